package messages

import (
	"Portfolio/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register mounts the message management API on an authenticated group.
// Every route here re-checks the session through the group middleware;
// none of them trusts a page-level gate.
func Register(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/messages", controllers.ListMessages(db))
	g.GET("/messages/stats", controllers.MessageStats(db))
	g.GET("/messages/export", controllers.ExportMessages(db))
	g.DELETE("/messages/:id", controllers.DeleteMessage(db))
}
