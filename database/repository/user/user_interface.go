package userRepo

import "hotelify/models"

// UserRepository defines the interface for guest account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no account exists for the email.
	GetByEmail(email string) (*models.User, error)
}
