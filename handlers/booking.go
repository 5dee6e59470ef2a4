package handlers

import (
	"net/http"

	"hotelify/models"
	"hotelify/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// BookRoom creates a cash booking for the authenticated user.
func (h *BookingHandler) BookRoom(c *gin.Context) {
	requester, ok := requesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Not authorized"})
		return
	}

	var intent models.BookingIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	bk, err := h.Service.CreateCashBooking(requester, intent)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Booking successful!", bk)
}

// GetBookings lists every booking, newest first (admin view).
func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.Service.GetAllBookings()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", bookings)
}

// GetMyBookings lists the authenticated user's bookings.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	requester, ok := requesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Not authorized"})
		return
	}

	bookings, err := h.Service.GetUserBookings(requester.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", bookings)
}

// CancelBooking cancels one booking on behalf of its owner or an admin.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	requester, ok := requesterFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Not authorized"})
		return
	}

	bk, err := h.Service.CancelBooking(requester, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Booking cancelled successfully", bk)
}

// UpdateBookingStatus performs an admin status transition.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	bk, err := h.Service.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Booking status updated successfully", bk)
}

// GetRevenue reports total revenue over completed payments.
func (h *BookingHandler) GetRevenue(c *gin.Context) {
	total, err := h.Service.CompletedRevenue()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", gin.H{"total": total})
}
