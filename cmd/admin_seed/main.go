// Command admin_seed provisions the admin account and the default platform
// tax rate. It is safe to run repeatedly.
package main

import (
	"context"
	"log"
	"os"

	"passeio/internal/config"
	"passeio/internal/models"
	"passeio/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminPhone := os.Getenv("ADMIN_PHONE")

	if adminEmail == "" || adminPassword == "" || adminPhone == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD, and ADMIN_PHONE must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("failed to close database connection: %v", err)
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("failed to close redis connection: %v", err)
			}
		}
	}()

	ctx := context.Background()
	store := repositories.NewStore(repositories.DB)

	// Ensure the settlement tax rate exists.
	if err := store.Settings().SetTax(ctx, repositories.DefaultTax); err != nil {
		log.Fatalf("failed to seed tax rate: %v", err)
	}
	log.Printf("tax rate set to %s", repositories.DefaultTax)

	if _, err := store.Users().GetByEmail(ctx, adminEmail); err == nil {
		log.Println("admin account already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password:", err)
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    adminEmail,
		Password: string(hashedPassword),
		Phone:    adminPhone,
		Role:     models.RoleAdmin,
	}
	if err := store.Users().Create(ctx, admin); err != nil {
		log.Fatal("failed to create admin account:", err)
	}

	log.Println("admin account created")
}
