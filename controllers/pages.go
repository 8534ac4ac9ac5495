package controllers

import (
	"net/http"

	"Portfolio/middleware"

	"github.com/gin-gonic/gin"
)

// LoginPage serves the admin sign-in form. An already-authenticated
// visitor is sent straight to the dashboard.
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.HasValidSession(c) {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
		c.HTML(http.StatusOK, "login.html", nil)
	}
}

// AdminPage serves the dashboard shell. Without a live session the
// visitor is redirected to /login; admin content is never rendered for
// an unauthenticated request.
func AdminPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !middleware.HasValidSession(c) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusOK, "admin.html", nil)
	}
}
