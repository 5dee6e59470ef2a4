package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"hotelify/services/room"
	"hotelify/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles room image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
	RoomSvc    room.RoomService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(storageSvc storage.StorageService, roomSvc room.RoomService) *StorageHandler {
	return &StorageHandler{StorageSvc: storageSvc, RoomSvc: roomSvc}
}

// UploadRoomImage uploads a room image and stores its URL on the room.
func (h *StorageHandler) UploadRoomImage(c *gin.Context) {
	roomID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "file not provided"})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "failed to save file"})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "rooms")
	if err != nil {
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "failed to upload file"})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "failed to construct download URL"})
		return
	}

	rm, err := h.RoomSvc.SetRoomImage(roomID, downloadURL)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Room image uploaded successfully", rm)
}
