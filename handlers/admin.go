package handlers

import (
	"net/http"

	"hotelify/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes back-office account endpoints.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// Login authenticates an admin and returns a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", resp)
}

// GetAdmins lists all admin accounts.
func (h *AdminHandler) GetAdmins(c *gin.Context) {
	admins, err := h.Service.GetAllAdmins()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", admins)
}

// CreateAdmin registers a new admin account.
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	if _, err := h.Service.CreateAdmin(input.Username, input.Password); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Admin user created successfully", nil)
}

// UpdateAdmin changes an admin's username and/or password.
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	if err := h.Service.UpdateAdmin(c.Param("id"), input.Username, input.Password); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Admin user updated successfully", nil)
}
