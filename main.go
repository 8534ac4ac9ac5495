package main

import (
	"log"
	"time"

	"Portfolio/middleware"
	"Portfolio/models"
	"Portfolio/pkg/config"
	"Portfolio/pkg/mailer"
	"Portfolio/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDatabase() (*gorm.DB, error) {
	if config.DBDriver == "mysql" {
		return gorm.Open(mysql.Open(config.DBDSN), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
}

func main() {
	// config load happens in init of pkg/config

	db, err := openDatabase()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Message{}, &models.Contact{}); err != nil {
		log.Fatalf("failed migrate: %v", err)
	}

	middleware.SetRateLimitConfig(
		time.Duration(config.RateLimitWindowSeconds)*time.Second,
		config.RateLimitCapacity,
	)
	middleware.SetDuplicateTTL(time.Duration(config.DuplicateWindowSeconds) * time.Second)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, mailer.New())
	r.Run(":" + config.Port)
}
