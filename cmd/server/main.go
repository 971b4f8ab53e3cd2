package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"voxform/internal/cache"
	"voxform/internal/config"
	"voxform/internal/db"
	"voxform/internal/handler"
	"voxform/internal/model"
	"voxform/internal/repository"
	"voxform/internal/router"
	"voxform/internal/service"
	"voxform/internal/session"
	"voxform/internal/speech"
	"voxform/internal/storage"
	"voxform/web"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	e := echo.New()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("template init: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.FormSubmission{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FormSubmission{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("Warning: redis unreachable (%v), sessions will not persist", err)
	}
	sessions := session.NewRedisStore(cacheClient, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	submissionRepo := repository.NewSubmissionRepository(gormDB)

	// Initialize services
	accountService := service.NewAccountService(userRepo)
	enrollmentService := service.NewEnrollmentService(submissionRepo)

	// Speech pipeline is optional: without an API key the /transcribe
	// endpoint responds 503 and everything else works normally.
	var pipeline *speech.Pipeline
	if cfg.OpenAIKey != "" {
		pipeline = speech.NewPipeline(
			speech.NewWhisperTranscriber(cfg.OpenAIKey),
			speech.NewOpenAITranslator(cfg.OpenAIKey),
		)
	} else {
		log.Println("OPENAI_API_KEY not set, speech transcription disabled")
	}
	audioStore := storage.NewAudioStore(cfg.UploadDir)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(userRepo, sessions)
	authHandler := handler.NewAuthHandler(accountService, sessions)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService, sessions)
	speechHandler := handler.NewSpeechHandler(pipeline, audioStore)

	// Register routes
	router.Register(
		e,
		sessions,
		pageHandler,
		authHandler,
		enrollmentHandler,
		speechHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
