package admin

import "hotelify/models"

// AuthResponse is returned on successful admin authentication.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// AdminService handles back-office accounts.
type AdminService interface {
	Authenticate(username, password string) (*AuthResponse, error)
	GetAdminByID(id string) (*models.Admin, error)
	GetAllAdmins() ([]models.Admin, error)
	CreateAdmin(username, password string) (*models.Admin, error)
	UpdateAdmin(id string, username, password string) error
	// EnsureDefaultAdmin creates the bootstrap account from configuration
	// when the admins collection is empty.
	EnsureDefaultAdmin(username, password string) error
}
