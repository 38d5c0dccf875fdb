package main

import (
	"context"
	"fmt"
	"log"

	"filedrop-backend/config"
	"filedrop-backend/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	fmt.Println("✅ Database schema created successfully!")
	fmt.Println("   Tables: users, files")
}
