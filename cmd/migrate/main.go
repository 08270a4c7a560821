package main

import (
	"log"
	"os"

	"open-instruct/internal/config"
	"open-instruct/internal/database"
	"open-instruct/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "database/migrations"
	}

	if err := database.RunMigrations(cfg.GetDSN(), migrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
