package user

import "hotelify/models"

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserService handles guest account registration and authentication.
type UserService interface {
	RegisterUser(name, email, password string) (*models.User, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
}
