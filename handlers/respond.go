package handlers

import (
	"errors"
	"net/http"

	"hotelify/models"
	"hotelify/services/booking"

	"github.com/gin-gonic/gin"
)

// Envelope is the response shape every endpoint returns.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// respondError maps the service error taxonomy to HTTP statuses. Untyped
// errors become a generic 500 so internal detail never leaks.
func respondError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeValidation:
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodeAuthorization:
		c.JSON(http.StatusForbidden, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodeNotFound:
		c.JSON(http.StatusNotFound, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodeSecurity:
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodePaymentState:
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodeInvalidTransition:
		c.JSON(http.StatusConflict, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodeRoomUnavailable:
		c.JSON(http.StatusConflict, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodeGateway:
		c.JSON(http.StatusBadGateway, Envelope{Success: false, Message: errMessage(err)})
	case booking.CodePartialFailure:
		// Money moved but local state did not. Keep the distinct message so
		// it is never mistaken for a generic server error.
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: errMessage(err)})
	default:
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "Server Error"})
	}
}

func errMessage(err error) string {
	var e *booking.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// requesterFrom reads the authenticated identity placed on the context by
// the auth middleware.
func requesterFrom(c *gin.Context) (models.Requester, bool) {
	val, exists := c.Get("requester")
	if !exists {
		return models.Requester{}, false
	}
	req, ok := val.(models.Requester)
	return req, ok
}
