package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Portfolio/pkg/config"
	tokenstore "Portfolio/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserIDKey = "current_user_id"
	ContextJTIKey    = "current_jti"

	// SessionCookie carries the same JWT as the Authorization header so
	// the HTML admin pages and the JSON API share one session.
	SessionCookie = "admin_session"
)

var errInvalidToken = errors.New("invalid token")

// AuthMiddleware guards the admin API. Every management endpoint is
// registered behind it; nothing relies on a page-level check alone.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			return
		}

		userID, jti, err := parseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if tokenstore.IsRevoked(jti) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session has been signed out"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextJTIKey, jti)
		c.Next()
	}
}

// HasValidSession reports whether the request carries a live session.
// Used by the HTML pages to decide between rendering and redirecting.
func HasValidSession(c *gin.Context) bool {
	tokenStr := tokenFromRequest(c)
	if tokenStr == "" {
		return false
	}
	_, jti, err := parseToken(tokenStr)
	if err != nil {
		return false
	}
	return !tokenstore.IsRevoked(jti)
}

// tokenFromRequest prefers the Authorization header, then the session
// cookie.
func tokenFromRequest(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		parts := strings.Fields(auth)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func parseToken(tokenStr string) (userID, jti string, err error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// only accept HMAC signing
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errInvalidToken
	}

	jti, _ = claims["jti"].(string)

	if sub, ok := claims["sub"].(string); ok {
		userID = sub
	} else if subf, ok := claims["sub"].(float64); ok {
		// jwt lib may parse numeric as float64
		userID = strconv.Itoa(int(subf))
	}
	if userID == "" {
		return "", "", errInvalidToken
	}
	return userID, jti, nil
}
