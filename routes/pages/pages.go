package pages

import (
	"Portfolio/controllers"

	"github.com/gin-gonic/gin"
)

// Register mounts the HTML pages. /admin does its own session check and
// redirects to /login rather than answering 401.
func Register(r *gin.Engine) {
	r.GET("/login", controllers.LoginPage())
	r.GET("/admin", controllers.AdminPage())
}
