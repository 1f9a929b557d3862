package main

import (
	"fmt"
	"log"

	"github.com/lakelodge/internal/config"
	"github.com/lakelodge/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// Creates the default admin account when the users table is empty.
func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("admin account already exists, nothing to do")
		return
	}

	password := "admin123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := db.User{Username: "admin", Password: string(hashed)}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	fmt.Println("created admin account (username admin, password admin123); change the password after first login")
}
