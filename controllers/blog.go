package controllers

import (
	"net/http"

	"Portfolio/pkg/blog"

	"github.com/gin-gonic/gin"
)

// ListPosts handles GET /api/blog: post summaries without bodies.
func ListPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, blog.All())
	}
}

// GetPost handles GET /api/blog/:slug.
func GetPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		post, ok := blog.BySlug(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
