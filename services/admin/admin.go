package admin

import (
	"fmt"
	"time"

	adminRepo "hotelify/database/repository/admin"
	"hotelify/models"
	"hotelify/services/booking"
	"hotelify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Admin tokens live for 24 hours.
const tokenDuration = 24 * time.Hour

// DefaultAdminService is the production AdminService.
type DefaultAdminService struct {
	Repo   adminRepo.AdminRepository
	Logger *zap.Logger
}

// Authenticate verifies admin credentials and issues a bearer token.
func (s *DefaultAdminService) Authenticate(username, password string) (*AuthResponse, error) {
	if username == "" || password == "" {
		return nil, booking.NewValidationError("username and password are required")
	}

	adm, err := s.Repo.GetByUsername(username)
	if err != nil {
		s.Logger.Error("Authenticate: failed to fetch admin", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if adm == nil {
		return nil, booking.NewAuthorizationError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		return nil, booking.NewAuthorizationError("invalid credentials")
	}

	token, err := utils.GenerateToken(adm.ID, utils.RoleAdmin, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{ID: adm.ID, Username: adm.Username, Token: token}, nil
}

// GetAdminByID fetches one admin account.
func (s *DefaultAdminService) GetAdminByID(id string) (*models.Admin, error) {
	adm, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, booking.NewNotFoundError("admin not found")
	}
	return adm, nil
}

// GetAllAdmins lists all admin accounts.
func (s *DefaultAdminService) GetAllAdmins() ([]models.Admin, error) {
	return s.Repo.GetAll()
}

// CreateAdmin registers a new back-office account.
func (s *DefaultAdminService) CreateAdmin(username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, booking.NewValidationError("username and password are required")
	}

	existing, err := s.Repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, booking.NewValidationError("admin with this username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	adm := &models.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(adm); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.Logger.Info("admin created", zap.String("adminId", adm.ID), zap.String("username", username))
	return adm, nil
}

// UpdateAdmin changes an admin's username and/or password.
func (s *DefaultAdminService) UpdateAdmin(id string, username, password string) error {
	adm, err := s.Repo.GetByID(id)
	if err != nil || adm == nil {
		return booking.NewNotFoundError("admin not found")
	}

	updateDoc := bson.M{}
	if username != "" && username != adm.Username {
		existing, err := s.Repo.GetByUsername(username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil {
			return booking.NewValidationError("username already taken")
		}
		updateDoc["username"] = username
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		updateDoc["password_hash"] = string(hash)
	}
	if len(updateDoc) == 0 {
		return booking.NewValidationError("nothing to update")
	}

	return s.Repo.UpdateSetDocument(id, updateDoc)
}

// EnsureDefaultAdmin creates the bootstrap account when no admin exists yet.
// Called once at startup with credentials from configuration; it never
// overwrites an existing account.
func (s *DefaultAdminService) EnsureDefaultAdmin(username, password string) error {
	if username == "" || password == "" {
		s.Logger.Warn("default admin bootstrap skipped: credentials not configured")
		return nil
	}

	admins, err := s.Repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) > 0 {
		return nil
	}

	if _, err := s.CreateAdmin(username, password); err != nil {
		return fmt.Errorf("failed to bootstrap default admin: %w", err)
	}
	s.Logger.Info("default admin account bootstrapped", zap.String("username", username))
	return nil
}
