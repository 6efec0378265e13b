package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"placement-portal/config"
	"placement-portal/internal/app"
	"placement-portal/internal/database"
	"placement-portal/internal/server"

	_ "placement-portal/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator/v10"
)

// @title           Placement Portal API
// @version         1.0
// @description     Backend for a campus placement portal: accounts, profiles, document review, job postings and applications.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()

	application, err := app.New(cfg, dbPool, redisClient, validate)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
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

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
