package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ats-api/config"
	_ "ats-api/docs"
	"ats-api/internal/app"
	"ats-api/internal/database"
	"ats-api/internal/server"
)

// @title           ATS API
// @version         1.0
// @description     Applicant tracking backend: students apply to jobs, recruiters review applications, admins manage accounts.

// @host      localhost:8080
// @BasePath  /api
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

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = database.Migrate(migrateCtx, dbPool)
	cancelMigrate()
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("WARN: %v. Continuing without job list cache.", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	application, err := app.New(cfg, dbPool, redisClient)
	if err != nil {
		log.Fatalf("Failed to initialise application: %v", err)
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
	}

	log.Println("Application gracefully stopped.")
}
