package handlers

import (
	"net/http"

	"hotelify/models"
	"hotelify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the online payment endpoints.
type PaymentHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(svc booking.BookingService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// CreateOrder opens a gateway order for a booking intent.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	requester, ok := requesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Not authorized"})
		return
	}

	var input struct {
		Amount float64              `json:"amount"`
		Intent models.BookingIntent `json:"bookingDetails"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	order, err := h.Service.CreatePaymentOrder(requester, input.Amount, input.Intent)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", gin.H{"order": order})
}

// VerifyPayment authenticates the gateway callback and materializes the
// booking.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	requester, ok := requesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Not authorized"})
		return
	}

	var input models.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	bk, err := h.Service.VerifyPayment(requester, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Payment verified and booking created successfully", bk)
}
