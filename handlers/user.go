package handlers

import (
	"net/http"

	"hotelify/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes guest registration, login and profile endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// Register creates a guest account.
func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	if _, err := h.Service.RegisterUser(input.Name, input.Email, input.Password); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "User registered successfully", nil)
}

// Login authenticates a guest and returns a bearer token.
func (h *UserHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

// Profile returns the authenticated user's account.
func (h *UserHandler) Profile(c *gin.Context) {
	requester, ok := requesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Not authorized"})
		return
	}

	usr, err := h.Service.GetUserByID(requester.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", usr)
}
