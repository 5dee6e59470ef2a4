package handlers

import (
	"net/http"

	"hotelify/models"
	"hotelify/services/room"

	"github.com/gin-gonic/gin"
)

// RoomHandler exposes the room catalog endpoints.
type RoomHandler struct {
	Service room.RoomService
}

// NewRoomHandler creates a new RoomHandler instance.
func NewRoomHandler(svc room.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

// GetRooms lists rooms currently open for booking.
func (h *RoomHandler) GetRooms(c *gin.Context) {
	rooms, err := h.Service.GetAvailableRooms()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", rooms)
}

// GetAllRooms lists the full catalog (admin view).
func (h *RoomHandler) GetAllRooms(c *gin.Context) {
	rooms, err := h.Service.GetAllRooms()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", rooms)
}

// GetRoomByID fetches one room.
func (h *RoomHandler) GetRoomByID(c *gin.Context) {
	rm, err := h.Service.GetRoomByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", rm)
}

// CreateRoom adds a room to the catalog.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input models.Room
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	rm, err := h.Service.CreateRoom(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Room created successfully", rm)
}

// UpdateRoom applies a whitelisted partial update.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var update models.RoomUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid input: " + err.Error()})
		return
	}

	rm, err := h.Service.UpdateRoom(c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", rm)
}

// DeleteRoom removes a room from the catalog.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.Service.DeleteRoom(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Room deleted successfully", nil)
}
