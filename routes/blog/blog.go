package blog

import (
	"Portfolio/controllers"

	"github.com/gin-gonic/gin"
)

// Register mounts the public blog content API.
func Register(r *gin.Engine) {
	r.GET("/api/blog", controllers.ListPosts())
	r.GET("/api/blog/:slug", controllers.GetPost())
}
