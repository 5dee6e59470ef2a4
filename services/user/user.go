package user

import (
	"fmt"
	"time"

	userRepo "hotelify/database/repository/user"
	"hotelify/models"
	"hotelify/services/booking"
	"hotelify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// User tokens live for 20 days.
const tokenDuration = 20 * 24 * time.Hour

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// RegisterUser creates a guest account with a bcrypt password hash.
func (s *DefaultUserService) RegisterUser(name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, booking.NewValidationError("name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		s.Logger.Error("RegisterUser: failed to check existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, booking.NewValidationError("user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		s.Logger.Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.Logger.Info("user registered", zap.String("userId", usr.ID))
	return usr, nil
}

// AuthenticateUser verifies credentials and issues a bearer token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, booking.NewValidationError("email and password are required")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		s.Logger.Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, booking.NewAuthorizationError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, booking.NewAuthorizationError("invalid credentials")
	}

	token, err := utils.GenerateToken(usr.ID, utils.RoleUser, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    usr.ID,
		Name:  usr.Name,
		Email: usr.Email,
		Token: token,
	}, nil
}

// GetUserByID fetches one account.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, booking.NewNotFoundError("user not found")
	}
	return usr, nil
}
