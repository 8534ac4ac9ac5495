package contact

import (
	"Portfolio/controllers"
	"Portfolio/middleware"
	"Portfolio/pkg/mailer"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPublic registers the throttled public ingestion endpoint.
func RegisterPublic(r *gin.Engine, db *gorm.DB, m mailer.Mailer) {
	r.POST("/api/contact", middleware.RateLimit(), controllers.SubmitContact(db, m))
}

// RegisterProtected registers the admin-only status patch.
func RegisterProtected(g *gin.RouterGroup, db *gorm.DB) {
	g.PATCH("/contact/:id", controllers.UpdateContactStatus(db))
}
