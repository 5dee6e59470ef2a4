package roomRepo

import (
	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RoomRepository defines data access for the room catalog. Claim and Release
// are the only paths that flip the availability flag; Claim is a conditional
// (compare-and-set) update so two concurrent claimants cannot both win.
type RoomRepository interface {
	Create(room *models.Room) error
	GetByID(id string) (*models.Room, error)
	GetAvailable() ([]models.Room, error)
	GetAll() ([]models.Room, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	// Claim atomically marks an available room unavailable. It returns
	// (false, nil) when the room exists but is already held.
	Claim(id string) (bool, error)
	// Release marks the room available again. Idempotent.
	Release(id string) error
	// Hold marks the room unavailable unconditionally. Used when a captured
	// payment outranks a stale availability flag.
	Hold(id string) error
}
