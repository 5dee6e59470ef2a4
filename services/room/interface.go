package room

import "hotelify/models"

// RoomService manages the room catalog. Availability is only mutated here
// through the explicit Available field of an update; booking-driven flips go
// through the booking service.
type RoomService interface {
	CreateRoom(input models.Room) (*models.Room, error)
	GetRoomByID(id string) (*models.Room, error)
	GetAvailableRooms() ([]models.Room, error)
	GetAllRooms() ([]models.Room, error)
	UpdateRoom(id string, update models.RoomUpdate) (*models.Room, error)
	DeleteRoom(id string) error
	SetRoomImage(id, imageURL string) (*models.Room, error)
}
