package admin

import (
	"testing"

	"hotelify/config"
	"hotelify/models"
	"hotelify/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap/zaptest"
)

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(adm *models.Admin) error {
	cp := *adm
	f.admins[adm.ID] = &cp
	return nil
}

func (f *fakeAdminRepo) GetByID(id string) (*models.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) GetByUsername(username string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) GetAll() ([]models.Admin, error) {
	var out []models.Admin
	for _, a := range f.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAdminRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	a := f.admins[id]
	if username, ok := updateDoc["username"].(string); ok {
		a.Username = username
	}
	if hash, ok := updateDoc["password_hash"].(string); ok {
		a.PasswordHash = hash
	}
	return nil
}

func newTestService(t *testing.T) (*DefaultAdminService, *fakeAdminRepo) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-jwt-secret"
	repo := newFakeAdminRepo()
	return &DefaultAdminService{Repo: repo, Logger: zaptest.NewLogger(t)}, repo
}

func TestEnsureDefaultAdmin(t *testing.T) {
	t.Run("creates the account when none exists", func(t *testing.T) {
		svc, repo := newTestService(t)

		require.NoError(t, svc.EnsureDefaultAdmin("root", "changeme"))
		admins, _ := repo.GetAll()
		require.Len(t, admins, 1)
		assert.Equal(t, "root", admins[0].Username)
		assert.NotEqual(t, "changeme", admins[0].PasswordHash)
	})

	t.Run("never overwrites an existing account", func(t *testing.T) {
		svc, repo := newTestService(t)
		_, err := svc.CreateAdmin("existing", "pass")
		require.NoError(t, err)

		require.NoError(t, svc.EnsureDefaultAdmin("root", "changeme"))
		admins, _ := repo.GetAll()
		assert.Len(t, admins, 1)
	})

	t.Run("skips silently when credentials are not configured", func(t *testing.T) {
		svc, repo := newTestService(t)
		require.NoError(t, svc.EnsureDefaultAdmin("", ""))
		admins, _ := repo.GetAll()
		assert.Empty(t, admins)
	})
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateAdmin("root", "changeme")
	require.NoError(t, err)

	t.Run("valid credentials return a token", func(t *testing.T) {
		resp, err := svc.Authenticate("root", "changeme")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "root", resp.Username)
	})

	t.Run("wrong password is refused", func(t *testing.T) {
		_, err := svc.Authenticate("root", "wrong")
		assert.Equal(t, booking.CodeAuthorization, booking.CodeOf(err))
	})
}

func TestUpdateAdmin(t *testing.T) {
	svc, repo := newTestService(t)
	adm, err := svc.CreateAdmin("root", "changeme")
	require.NoError(t, err)

	t.Run("renames the account", func(t *testing.T) {
		require.NoError(t, svc.UpdateAdmin(adm.ID, "superroot", ""))
		got, _ := repo.GetByID(adm.ID)
		assert.Equal(t, "superroot", got.Username)
	})

	t.Run("taken username is rejected", func(t *testing.T) {
		other, err := svc.CreateAdmin("other", "pass")
		require.NoError(t, err)
		err = svc.UpdateAdmin(other.ID, "superroot", "")
		assert.Equal(t, booking.CodeValidation, booking.CodeOf(err))
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		err := svc.UpdateAdmin(adm.ID, "", "")
		assert.Equal(t, booking.CodeValidation, booking.CodeOf(err))
	})
}
