package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"filedrop-backend/config"
	"filedrop-backend/models"
	"filedrop-backend/repository"
	"filedrop-backend/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	username := flag.String("username", "", "username to register")
	flag.Parse()
	if *username == "" && flag.NArg() > 0 {
		*username = flag.Arg(0)
	}
	if *username == "" {
		fmt.Fprintln(os.Stderr, "usage: create-user -username <name>")
		os.Exit(2)
	}

	// Load .env file if it exists
	if !config.LoadDotEnv() {
		log.Println("Warning: No .env file found, using environment variables")
	}
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

	authService := service.NewAuthService(
		service.WithUserRepository(repository.NewUserRepository(pool)),
	)

	user, err := authService.Register(ctx, *username)
	if errors.Is(err, models.ErrDuplicateUsername) {
		log.Printf("User %s already exists", *username)
		return
	}
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("✅ User created successfully!\n")
	fmt.Printf("   ID: %d\n", user.ID)
	fmt.Printf("   Username: %s\n", user.Username)
}
