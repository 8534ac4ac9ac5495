package controllers

import (
	"net/http"
	"time"

	"Portfolio/models"
	"Portfolio/pkg/cache"
	"Portfolio/pkg/config"
	"Portfolio/pkg/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const statsCacheKey = "messages:stats"

func listMessages(db *gorm.DB) ([]models.Message, error) {
	var msgs []models.Message
	err := db.Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

// ListMessages handles GET /api/messages: the full list, newest first.
// No pagination; the admin view works on the whole set.
func ListMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := listMessages(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

// DeleteMessage handles DELETE /api/messages/:id. Unknown ids are 404,
// storage trouble is 500; the two are never conflated.
func DeleteMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		res := db.Delete(&models.Message{}, "id = ?", id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		// drop the status mirror too; it has no life of its own
		db.Delete(&models.Contact{}, "id = ?", id)

		cache.Default().Delete(statsCacheKey)
		c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
	}
}

// MessageStats handles GET /api/messages/stats. Stats always come from
// the full unfiltered list; the result is memoized briefly and dropped
// on every mutation so the dashboard never sees a pre-mutation snapshot.
func MessageStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := cache.Default().Get(statsCacheKey); ok {
			if s, ok := v.(report.Stats); ok {
				c.JSON(http.StatusOK, s)
				return
			}
		}

		msgs, err := listMessages(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
			return
		}
		s := report.ComputeStats(msgs, time.Now())
		cache.Default().Set(statsCacheKey, s, time.Duration(config.StatsCacheTTLSeconds)*time.Second)
		c.JSON(http.StatusOK, s)
	}
}

// ExportMessages handles GET /api/messages/export?search=&filter=&format=.
// It exports the currently filtered view, not the full list, using the
// same search/window semantics as the dashboard.
func ExportMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		window, ok := report.ParseWindow(c.Query("filter"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
			return
		}
		format := c.DefaultQuery("format", "csv")
		if format != "csv" && format != "xlsx" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format"})
			return
		}

		msgs, err := listMessages(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
			return
		}

		now := time.Now()
		filtered := report.Filter(msgs, c.Query("search"), window, now)

		filename := report.ExportFilename(format, now)
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

		if format == "xlsx" {
			c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			if err := report.WriteXLSX(c.Writer, filtered); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export messages"})
			}
			return
		}

		c.Header("Content-Type", "text/csv;charset=utf-8")
		c.Status(http.StatusOK)
		if err := report.WriteCSV(c.Writer, filtered); err != nil {
			// headers are out already; nothing sane left to send
			c.Abort()
		}
	}
}
