package controllers

import (
	"log"
	"net/http"
	"strings"

	"Portfolio/middleware"
	"Portfolio/models"
	"Portfolio/pkg/cache"
	"Portfolio/pkg/mailer"
	utils "Portfolio/pkg/utills"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	maxNameLength    = 120
	maxEmailLength   = 254
	maxMessageLength = 5000
)

// SubmitContact handles POST /api/contact. It validates the form,
// persists the message (plus its status-bearing contact record), then
// fires one best-effort notification to the admin. A failed
// notification never fails the submission.
func SubmitContact(db *gorm.DB, m mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		name := strings.TrimSpace(body.Name)
		email := strings.TrimSpace(strings.ToLower(body.Email))
		text := strings.TrimSpace(body.Message)

		if name == "" || email == "" || text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
			return
		}
		if len(name) > maxNameLength || len(email) > maxEmailLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name or email too long"})
			return
		}
		if len([]rune(text)) > maxMessageLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message too long"})
			return
		}
		if !utils.IsValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}

		if !middleware.DuplicateGuard(c.ClientIP(), name+"|"+email+"|"+text) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "duplicate submission, retry later"})
			return
		}

		msg := models.Message{Name: name, Email: email, Body: text}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
			return
		}
		// status-bearing mirror for the admin workflow, same id
		contact := models.Contact{ID: msg.ID, Name: name, Email: email, Body: text}
		if err := db.Create(&contact).Error; err != nil {
			log.Printf("[contact] failed to mirror contact record %s: %v", msg.ID, err)
		}

		cache.Default().Delete(statsCacheKey)

		// best-effort: log and move on, the message is already stored
		if err := m.SendNewMessageNotification(name, email, text); err != nil {
			log.Printf("[contact] notification failed for %s: %v", msg.ID, err)
		}

		c.JSON(http.StatusCreated, msg)
	}
}

// UpdateContactStatus handles PATCH /api/contact/:id.
func UpdateContactStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
			return
		}
		if !models.ValidContactStatus(body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown status"})
			return
		}

		var contact models.Contact
		if err := db.First(&contact, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "contact not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "db error"})
			return
		}

		contact.Status = body.Status
		if err := db.Save(&contact).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update contact"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": contact})
	}
}
