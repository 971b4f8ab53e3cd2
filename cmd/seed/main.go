package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"voxform/internal/config"
	"voxform/internal/db"
	"voxform/internal/model"
	"voxform/internal/repository"
)

// Demo credentials for local development.
const (
	demoUsername = "demo"
	demoEmail    = "demo@voxform.local"
	demoPassword = "demo-password"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.FormSubmission{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if existing, err := userRepo.FindByEmail(ctx, demoEmail); err == nil && existing != nil {
		log.Printf("Demo user %s already exists (id=%d), nothing to do", demoEmail, existing.ID)
		return
	} else if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("check demo user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: string(hash),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("create demo user: %v", err)
	}

	log.Printf("Seeded demo user %s (id=%d), password %q", demoEmail, user.ID, demoPassword)
}
