package service

import (
	"context"
	"testing"

	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedAdmin(t *testing.T, store *fakeStore, email, password string) *entity.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &entity.AdminUser{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "Test Admin",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	store.admins = append(store.admins, admin)
	return admin
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newFakeStore()
	admin := seedAdmin(t, store, "ops@signalforgood.com", "swordfish")
	svc := NewAdminService(newFakeFactory(store), nopLogger{}, nil)

	res, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "ops@signalforgood.com",
		Password: "swordfish",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.Id, res.Admin.Id)
	assert.NotEmpty(t, res.AccessToken)

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, admin.Id.String(), claims["admin_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	store := newFakeStore()
	seedAdmin(t, store, "ops@signalforgood.com", "swordfish")
	svc := NewAdminService(newFakeFactory(store), nopLogger{}, nil)

	_, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "ops@signalforgood.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(newFakeFactory(store), nopLogger{}, nil)

	_, err := svc.Login(context.Background(), &dto.AdminLoginRequest{
		Email:    "nobody@signalforgood.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	seedAdmin(t, store, "ops@signalforgood.com", "swordfish")
	svc := NewAdminService(newFakeFactory(store), nopLogger{}, nil)

	_, err := svc.CreateAdmin(context.Background(), &dto.CreateAdminRequest{
		Email:    "ops@signalforgood.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateAdminHashesPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(newFakeFactory(store), nopLogger{}, nil)

	res, err := svc.CreateAdmin(context.Background(), &dto.CreateAdminRequest{
		Email:    "new@signalforgood.com",
		FullName: "New Admin",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Role)

	require.Len(t, store.admins, 1)
	assert.NotEqual(t, "password123", store.admins[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(store.admins[0].PasswordHash), []byte("password123")))
}

func TestGetMetrics(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(newFakeFactory(store), nopLogger{}, nil)

	res, err := svc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(80), res.MissionsTotal)
	assert.Equal(t, int64(16), res.MissionsLive)
	assert.Greater(t, res.MessagesTotal, int64(0))
	assert.Greater(t, res.ClaimsTotal, int64(0))
	assert.Greater(t, res.CitationsTotal, int64(0))
	assert.Zero(t, res.DonationsTotal)
}
