package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"natheme-api/config"
	"natheme-api/handlers"
	"natheme-api/models"
	"natheme-api/routes"
	"natheme-api/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testOwnerEmail = "boss@natheme.com"

type mockMailer struct {
	subjects []string
	err      error
}

func (m *mockMailer) Send(subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.subjects = append(m.subjects, subject)
	return nil
}

// setupRouter builds the full application router against a fresh
// database and a mock mailer.
func setupRouter(t *testing.T) (*gin.Engine, *mockMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Project{}, &models.Catalog{}, &models.ContactMessage{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	config.DB = db
	config.C = &config.Config{UploadDir: t.TempDir()}

	tokens := service.NewTokenService("test-secret", time.Hour)
	auth := service.NewAuthService(db, tokens, testOwnerEmail)
	mail := &mockMailer{}

	r := gin.New()
	routes.SetupRoutes(r, tokens, routes.Handlers{
		Auth:    handlers.NewAuthHandler(auth),
		Admin:   handlers.NewAdminHandler(auth),
		Contact: handlers.NewContactHandler(mail),
	})
	return r, mail
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, w.Body.String())
	}
	return out
}

// signup registers a user and returns the issued token.
func signup(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":            name,
		"email":           email,
		"password":        "abcd1234",
		"confirmPassword": "abcd1234",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup for %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("signup for %s returned no token", email)
	}
	return token
}

// makeAdmin flips a user's role directly in the store.
func makeAdmin(t *testing.T, email string) {
	t.Helper()
	if err := config.DB.Model(&models.User{}).Where("email = ?", email).
		Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("failed to make %s admin: %v", email, err)
	}
}
