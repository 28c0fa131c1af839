package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"signal-for-good-be/internal/bootstrap"
	"signal-for-good-be/internal/config"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/unitofwork"
	"signal-for-good-be/internal/server"
	"signal-for-good-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuth(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	t.Setenv("JWT_SECRET", "integration-test-secret")
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// 1. Seed Admin User
	adminPass := "admin123secure"
	adminHash, _ := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	adminEmail := "it-admin-" + uuid.New().String() + "@example.com"

	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(context.Background())
	err = uow.AdminUserRepository().Create(context.Background(), &entity.AdminUser{
		Id:           uuid.New(),
		Email:        adminEmail,
		FullName:     "Integration Admin",
		PasswordHash: string(adminHash),
		Role:         "admin",
	})
	assert.NoError(t, err)
	defer db.Exec("DELETE FROM admin_users WHERE email = ?", adminEmail)

	// 2. Login
	loginBody := `{"email":"` + adminEmail + `","password":"` + adminPass + `"}`
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var loginEnvelope struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&loginEnvelope)
	assert.NoError(t, err)
	assert.True(t, loginEnvelope.Success)
	assert.NotEmpty(t, loginEnvelope.Data.AccessToken)

	// 3. Metrics with token
	req = httptest.NewRequest("GET", "/api/admin/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+loginEnvelope.Data.AccessToken)

	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// 4. Metrics without token is rejected
	req = httptest.NewRequest("GET", "/api/admin/metrics", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// 5. Wrong password is rejected
	badBody := `{"email":"` + adminEmail + `","password":"wrong-password"}`
	req = httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(badBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
