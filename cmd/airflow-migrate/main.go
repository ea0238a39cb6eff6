package main // Entry point package

import (
	"context" // context bounds the bootstrap work
	"log"     // Logging library
	"time"    // time provides the bootstrap timeout

	"github.com/joho/godotenv" // Loads .env files into the environment

	"github.com/airflow/reservations/internal/config"   // Internal config loader
	"github.com/airflow/reservations/internal/database" // Pool, schema and seed bootstrap
)

// airflow-migrate brings a database up to the current schema: it
// creates the eight tables if needed and upserts the status seed data.
// Safe to run repeatedly.
func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatalf("apply schema: %v", err)
	}
	if err := database.SeedStatuses(ctx, db); err != nil {
		log.Fatalf("seed statuses: %v", err)
	}
	log.Printf("schema ready on %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
}
