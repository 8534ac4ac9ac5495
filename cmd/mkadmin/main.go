// mkadmin creates or updates an admin credential directly in the
// database, for bootstrapping a deployment without the HTTP API.
//
//	go run ./cmd/mkadmin -email admin@example.com -password 's3cret1'
package main

import (
	"flag"
	"log"
	"strings"

	"Portfolio/models"
	"Portfolio/pkg/config"
	utils "Portfolio/pkg/utills"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	addr := strings.TrimSpace(strings.ToLower(*email))
	if addr == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if !utils.IsValidEmail(addr) {
		log.Fatalf("invalid email %q", addr)
	}
	if !utils.HasLetter(*password) || !utils.HasNumber(*password) {
		log.Fatal("password must contain at least one letter and one number")
	}

	var db *gorm.DB
	var err error
	if config.DBDriver == "mysql" {
		db, err = gorm.Open(mysql.Open(config.DBDSN), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("failed migrate: %v", err)
	}

	var user models.User
	switch err := db.Where("email = ?", addr).First(&user).Error; err {
	case nil:
		if err := user.SetPassword(*password); err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("failed to update user: %v", err)
		}
		log.Printf("updated password for %s", addr)
	case gorm.ErrRecordNotFound:
		user = models.User{Email: addr}
		if err := user.SetPassword(*password); err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		log.Printf("created admin %s", addr)
	default:
		log.Fatalf("db error: %v", err)
	}
}
