package room

import (
	"fmt"
	"time"

	roomRepo "hotelify/database/repository/room"
	"hotelify/models"
	"hotelify/services/booking"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultRoomService is the production RoomService.
type DefaultRoomService struct {
	Repo   roomRepo.RoomRepository
	Logger *zap.Logger
}

// CreateRoom adds a room to the catalog. New rooms start available unless
// the input says otherwise.
func (s *DefaultRoomService) CreateRoom(input models.Room) (*models.Room, error) {
	if input.Name == "" || input.Type == "" {
		return nil, booking.NewValidationError("room name and type are required")
	}
	if input.Price <= 0 {
		return nil, booking.NewValidationError("room price is required")
	}

	input.ID = uuid.New().String()
	input.CreatedAt = time.Now()

	if err := s.Repo.Create(&input); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.Logger.Info("room created", zap.String("roomId", input.ID), zap.String("name", input.Name))
	return &input, nil
}

// GetRoomByID fetches one room.
func (s *DefaultRoomService) GetRoomByID(id string) (*models.Room, error) {
	rm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if rm == nil {
		return nil, booking.NewNotFoundError("room not found")
	}
	return rm, nil
}

// GetAvailableRooms lists rooms open for booking.
func (s *DefaultRoomService) GetAvailableRooms() ([]models.Room, error) {
	return s.Repo.GetAvailable()
}

// GetAllRooms lists the full catalog.
func (s *DefaultRoomService) GetAllRooms() ([]models.Room, error) {
	return s.Repo.GetAll()
}

// UpdateRoom applies an explicit whitelist of updatable fields. Unknown keys
// never reach the document, so the update endpoint cannot mass-assign.
func (s *DefaultRoomService) UpdateRoom(id string, update models.RoomUpdate) (*models.Room, error) {
	updateDoc := bson.M{}
	if update.Name != nil {
		updateDoc["name"] = *update.Name
	}
	if update.Type != nil {
		updateDoc["type"] = *update.Type
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Image != nil {
		updateDoc["image"] = *update.Image
	}
	if update.Price != nil {
		if *update.Price <= 0 {
			return nil, booking.NewValidationError("room price must be positive")
		}
		updateDoc["price"] = *update.Price
	}
	if update.Capacity != nil {
		if update.Capacity.Adults < 1 || update.Capacity.Children < 0 {
			return nil, booking.NewValidationError("invalid room capacity")
		}
		updateDoc["capacity"] = *update.Capacity
	}
	if update.Size != nil {
		updateDoc["size"] = *update.Size
	}
	if update.Bed != nil {
		updateDoc["bed"] = *update.Bed
	}
	if update.Amenities != nil {
		updateDoc["amenities"] = update.Amenities
	}
	if update.Available != nil {
		updateDoc["available"] = *update.Available
	}
	if len(updateDoc) == 0 {
		return nil, booking.NewValidationError("no updatable fields provided")
	}

	rm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if rm == nil {
		return nil, booking.NewNotFoundError("room not found")
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated room: %w", err)
	}
	return updated, nil
}

// DeleteRoom removes a room from the catalog.
func (s *DefaultRoomService) DeleteRoom(id string) error {
	rm, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch room: %w", err)
	}
	if rm == nil {
		return booking.NewNotFoundError("room not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	s.Logger.Info("room deleted", zap.String("roomId", id))
	return nil
}

// SetRoomImage stores the uploaded image URL on the room document.
func (s *DefaultRoomService) SetRoomImage(id, imageURL string) (*models.Room, error) {
	img := imageURL
	return s.UpdateRoom(id, models.RoomUpdate{Image: &img})
}
