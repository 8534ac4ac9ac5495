package controllers

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
)

func pagesRouter() *gin.Engine {
	r := gin.New()
	r.LoadHTMLGlob(filepath.Join("..", "web", "templates", "*.html"))
	r.GET("/login", LoginPage())
	r.GET("/admin", AdminPage())
	return r
}

func TestAdminRedirectsUnauthenticated(t *testing.T) {
	r := pagesRouter()

	rec := performWithCookie(r, http.MethodGet, "/admin", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestAdminRendersWithSession(t *testing.T) {
	r := pagesRouter()
	token := newToken(t)

	rec := performWithCookie(r, http.MethodGet, "/admin", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected dashboard to render for a live session, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" {
		t.Fatalf("expected HTML body")
	}
}

func TestAdminRejectsGarbageCookie(t *testing.T) {
	r := pagesRouter()

	rec := performWithCookie(r, http.MethodGet, "/admin", "not-a-jwt")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302 for an invalid cookie, got %d", rec.Code)
	}
}

func TestLoginPageSkipsAuthenticatedVisitor(t *testing.T) {
	r := pagesRouter()
	token := newToken(t)

	rec := performWithCookie(r, http.MethodGet, "/login", token)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect to /admin, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("expected /admin, got %q", loc)
	}
}

func TestLoginPageRendersUnauthenticated(t *testing.T) {
	r := pagesRouter()

	rec := performWithCookie(r, http.MethodGet, "/login", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected login page, got %d", rec.Code)
	}
}
