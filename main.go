package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-board-api/config"
	"job-board-api/internal/app"
	"job-board-api/internal/database"
	"job-board-api/internal/server"
	"job-board-api/internal/storage/postgres"

	_ "job-board-api/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// @title           Job Board API
// @version         1.0
// @description     REST API for a job board: companies post jobs, candidates apply.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey SessionAuth
// @in cookie
// @name session
// @description Signed session token issued by the auth frontend.
func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if cfg.Seed.Enabled {
		companyRepo := postgres.NewCompanyRepo(dbPool)
		jobRepo := postgres.NewJobRepo(dbPool)
		if err := database.SeedIfEmpty(context.Background(), companyRepo, jobRepo); err != nil {
			log.Printf("WARN: Failed to seed database: %v. Continuing without seed data.", err)
		}
	}

	validate := validator.New()

	application := &app.Application{
		Config:    cfg,
		DBPool:    dbPool,
		Validator: validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	log.Println("Application gracefully stopped.")
}
