package adminRepo

import (
	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminRepository defines the interface for admin account data access.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByID(id string) (*models.Admin, error)
	// GetByUsername returns (nil, nil) when no account exists for the username.
	GetByUsername(username string) (*models.Admin, error)
	GetAll() ([]models.Admin, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
}
