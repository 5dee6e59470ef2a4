package user

import (
	"testing"

	"hotelify/config"
	"hotelify/models"
	"hotelify/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Create(usr *models.User) error {
	cp := *usr
	f.byID[usr.ID] = &cp
	f.byEmail[usr.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newTestService(t *testing.T) (*DefaultUserService, *fakeUserRepo) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-jwt-secret"
	repo := newFakeUserRepo()
	return &DefaultUserService{Repo: repo, Logger: zaptest.NewLogger(t)}, repo
}

func TestRegisterUser(t *testing.T) {
	t.Run("hashes the password and stores the account", func(t *testing.T) {
		svc, repo := newTestService(t)

		usr, err := svc.RegisterUser("Alice", "alice@example.com", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, usr.ID)
		assert.NotEqual(t, "s3cret", usr.PasswordHash)

		stored, _ := repo.GetByEmail("alice@example.com")
		require.NotNil(t, stored)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.RegisterUser("Alice", "alice@example.com", "s3cret")
		require.NoError(t, err)

		_, err = svc.RegisterUser("Other Alice", "alice@example.com", "different")
		assert.Equal(t, booking.CodeValidation, booking.CodeOf(err))
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.RegisterUser("", "alice@example.com", "s3cret")
		assert.Equal(t, booking.CodeValidation, booking.CodeOf(err))
	})
}

func TestAuthenticateUser(t *testing.T) {
	t.Run("valid credentials return a token", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.RegisterUser("Alice", "alice@example.com", "s3cret")
		require.NoError(t, err)

		resp, err := svc.AuthenticateUser("alice@example.com", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Alice", resp.Name)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.RegisterUser("Alice", "alice@example.com", "s3cret")
		require.NoError(t, err)

		_, errWrongPass := svc.AuthenticateUser("alice@example.com", "wrong")
		_, errNoUser := svc.AuthenticateUser("nobody@example.com", "s3cret")

		assert.Equal(t, booking.CodeAuthorization, booking.CodeOf(errWrongPass))
		assert.Equal(t, booking.CodeAuthorization, booking.CodeOf(errNoUser))
		assert.Equal(t, errWrongPass.Error(), errNoUser.Error(), "responses must not reveal which credential was wrong")
	})
}
