package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filedrop-backend/config"
	"filedrop-backend/handlers"
	"filedrop-backend/logging"
	"filedrop-backend/repository"
	"filedrop-backend/service"
	"filedrop-backend/session"
	"filedrop-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	envLoaded := config.LoadDotEnv(".env", "../../.env")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logging.New(cfg.LogLevel)
	if !envLoaded {
		log.Info("No .env file found, using environment variables")
	}
	if cfg.GinMode != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database connections
	db, err := initPostgres(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalf("Failed to initialize Postgres: %v", err)
	}
	defer db.Close()

	// Initialize storage
	fileStorage, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.WithField("type", cfg.Storage.Type).Info("Storage initialized")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)

	// Initialize services
	authService := service.NewAuthService(
		service.WithUserRepository(userRepo),
		service.AuthWithLogger(log),
	)
	fileService := service.NewFileService(
		service.WithFileRepository(fileRepo),
		service.WithStorage(fileStorage),
		service.FileWithLogger(log),
	)

	// Initialize session store
	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}
	store, err := session.NewStore(session.Config{
		Secret:        cfg.SessionSecret,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
	})
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	fileHandler := handlers.NewFileHandler(fileService, log, cfg.MaxUploadSize)

	// Setup Gin router
	r := gin.New()
	r.Use(logging.GinLogger(log), gin.Recovery())
	r.MaxMultipartMemory = 8 << 20
	r.Use(session.Middleware(store))
	handlers.SetRouter(r, authHandler, fileHandler, db.Ping)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
	}
	log.Info("Server shutdown complete")
}

func initPostgres(connString string, log logrus.FieldLogger) (*pgxpool.Pool, error) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Postgres connection established")
	return pool, nil
}
