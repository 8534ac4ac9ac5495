package routes

import (
	"net/http"

	"Portfolio/middleware"
	"Portfolio/pkg/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authRoutes "Portfolio/routes/auth"
	blogRoutes "Portfolio/routes/blog"
	contactRoutes "Portfolio/routes/contact"
	messagesRoutes "Portfolio/routes/messages"
	pagesRoutes "Portfolio/routes/pages"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, m mailer.Mailer) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "portfolio backend running"})
	})

	pagesRoutes.Register(r)
	blogRoutes.Register(r)
	authRoutes.RegisterPublic(r, db)
	contactRoutes.RegisterPublic(r, db, m)

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	authRoutes.RegisterProtected(protected)
	contactRoutes.RegisterProtected(protected, db)
	messagesRoutes.Register(protected, db)
}
