// Package testutil wires an in-memory SQLite database and test users for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerhub/config"
	"careerhub/database"
	"careerhub/middleware"
	"careerhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Config returns a configuration with no third-party credentials
func Config() *config.Config {
	return &config.Config{
		Port:           "0",
		LogLevel:       "error",
		CorsOrigins:    "*",
		DBDriver:       "sqlite",
		JWTKey:         "test-secret",
		JWTTTLHours:    1,
		SaltRound:      bcrypt.MinCost,
		NewsAPICountry: "us",
		SupabaseBucket: "media",
		EmailSender:    "no-reply@test.local",
	}
}

// SetupDB opens a private in-memory database, migrates it and installs it as database.Database
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = Config()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	database.Database = database.DbInstance{Db: db}
	return db
}

// CreateUser inserts a user with password "password123" and returns it with a bearer token
func CreateUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s-%s@test.local", strings.ToLower(role), uuid.NewString()[:8]),
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

// Response is a decoded JSON envelope
type Response struct {
	Code    int
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Raw     []byte
}

// Decode unmarshals Data into dst
func (r *Response) Decode(t *testing.T, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, dst), string(r.Raw))
}

// Do sends a JSON request through app and decodes the envelope
func Do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			payload, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return Send(t, app, req)
}

// Send runs a prepared request through app
func Send(t *testing.T, app *fiber.App, req *http.Request) *Response {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := &Response{Code: resp.StatusCode, Raw: raw}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return out
}
