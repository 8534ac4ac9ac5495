package auth

import (
	"Portfolio/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPublic registers /api/register and /api/login.
func RegisterPublic(r *gin.Engine, db *gorm.DB) {
	r.POST("/api/register", controllers.Register(db))
	r.POST("/api/login", controllers.Login(db))
}

// RegisterProtected registers routes that need a live session (logout).
func RegisterProtected(g *gin.RouterGroup) {
	g.POST("/logout", controllers.Logout())
}
