package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"Portfolio/middleware"
	"Portfolio/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func authRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.POST("/api/register", Register(db))
	r.POST("/api/login", Login(db))
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	api.POST("/logout", Logout())
	api.GET("/messages", ListMessages(db))
	return r
}

func TestRegisterCreatesHashedCredential(t *testing.T) {
	db := setupDB(t)
	r := authRouter(db)

	rec := perform(r, http.MethodPost, "/api/register", `{"email":"Admin@Example.com","password":"s3cret"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	if err := db.First(&user, "email = ?", "admin@example.com").Error; err != nil {
		t.Fatalf("expected user stored with lowercased email: %v", err)
	}
	if user.PasswordHash == "s3cret" || user.PasswordHash == "" {
		t.Fatalf("expected password to be hashed")
	}
	if !user.CheckPassword("s3cret") {
		t.Fatalf("expected stored hash to verify the password")
	}
}

func TestRegisterRejections(t *testing.T) {
	db := setupDB(t)
	r := authRouter(db)

	if rec := perform(r, http.MethodPost, "/api/register", `{"email":"a@b.co","password":"lettersonly"}`, ""); rec.Code != http.StatusBadRequest {
		t.Errorf("weak password: expected 400, got %d", rec.Code)
	}
	if rec := perform(r, http.MethodPost, "/api/register", `{"email":"bad-email","password":"abc123"}`, ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad email: expected 400, got %d", rec.Code)
	}

	if rec := perform(r, http.MethodPost, "/api/register", `{"email":"dup@b.co","password":"abc123"}`, ""); rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}
	if rec := perform(r, http.MethodPost, "/api/register", `{"email":"dup@b.co","password":"abc123"}`, ""); rec.Code != http.StatusConflict {
		t.Errorf("duplicate email: expected 409, got %d", rec.Code)
	}
}

func TestLoginIssuesTokenAndCookie(t *testing.T) {
	db := setupDB(t)
	r := authRouter(db)

	perform(r, http.MethodPost, "/api/register", `{"email":"admin@b.co","password":"abc123"}`, "")

	rec := perform(r, http.MethodPost, "/api/login", `{"email":"admin@b.co","password":"abc123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.AccessToken == "" {
		t.Fatalf("expected an access token, got %s", rec.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatalf("expected the session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Errorf("expected an http-only session cookie")
	}

	// the issued token must open the admin API
	if rec := perform(r, http.MethodGet, "/api/messages", "", resp.AccessToken); rec.Code != http.StatusOK {
		t.Fatalf("expected token to grant API access, got %d", rec.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupDB(t)
	r := authRouter(db)

	perform(r, http.MethodPost, "/api/register", `{"email":"admin@b.co","password":"abc123"}`, "")

	if rec := perform(r, http.MethodPost, "/api/login", `{"email":"admin@b.co","password":"wrong9"}`, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", rec.Code)
	}
	if rec := perform(r, http.MethodPost, "/api/login", `{"email":"ghost@b.co","password":"abc123"}`, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: expected 401, got %d", rec.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	db := setupDB(t)
	r := authRouter(db)

	perform(r, http.MethodPost, "/api/register", `{"email":"admin@b.co","password":"abc123"}`, "")
	rec := perform(r, http.MethodPost, "/api/login", `{"email":"admin@b.co","password":"abc123"}`, "")
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad login response: %v", err)
	}

	if rec := perform(r, http.MethodGet, "/api/messages", "", resp.AccessToken); rec.Code != http.StatusOK {
		t.Fatalf("expected access before logout, got %d", rec.Code)
	}
	if rec := perform(r, http.MethodPost, "/api/logout", "", resp.AccessToken); rec.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", rec.Code)
	}
	if rec := perform(r, http.MethodGet, "/api/messages", "", resp.AccessToken); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected revoked token to be rejected, got %d", rec.Code)
	}
}
