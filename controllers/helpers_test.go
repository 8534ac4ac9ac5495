package controllers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"Portfolio/middleware"
	"Portfolio/models"
	"Portfolio/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupDB opens a per-test in-memory sqlite database. The shared-cache
// DSN keeps gorm's pooled connections on the same database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Message{}, &models.Contact{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newToken signs a session token the way Login does.
func newToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": strconv.Itoa(1),
		"exp": time.Now().Add(time.Hour).Unix(),
		"jti": uuid.NewString(),
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tokenStr
}

func perform(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func performWithCookie(r *gin.Engine, method, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// seedMessage inserts a message with an explicit creation time.
func seedMessage(t *testing.T, db *gorm.DB, name, email, body string, created time.Time) models.Message {
	t.Helper()
	m := models.Message{Name: name, Email: email, Body: body, CreatedAt: created}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed message: %v", err)
	}
	return m
}

// fakeMailer records notification attempts and can be told to fail.
type fakeMailer struct {
	sent []string
	fail bool
}

func (f *fakeMailer) SendNewMessageNotification(name, email, body string) error {
	f.sent = append(f.sent, email)
	if f.fail {
		return fmt.Errorf("smtp unreachable")
	}
	return nil
}
