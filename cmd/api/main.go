package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/credifacil/backend/internal/config"
	"github.com/credifacil/backend/internal/handler"
	"github.com/credifacil/backend/internal/repository"
	"github.com/credifacil/backend/internal/service"
)

func main() {
	// Local development loads settings from .env; missing file is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// The store connection is built here and injected; the core services
	// stay store-agnostic.
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Initialize repositories
	creditRepo := repository.NewCreditRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Initialize services
	catalogService := service.NewCatalogService(creditRepo)
	applicationService := service.NewApplicationService(applicationRepo, creditRepo)

	// Initialize handlers
	creditHandler := handler.NewCreditHandler(catalogService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	// CORS - allow frontend origin from env or default
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Catalog
	r.Get("/api/credits", creditHandler.List)
	r.Post("/api/credits/seed", creditHandler.Seed) // Admin: seed launch catalog
	r.Get("/api/credits/{id}", creditHandler.Get)
	r.Get("/api/credits/{id}/simulate", creditHandler.Simulate)

	// Applications. Submission dedup needs Redis; without it the endpoint
	// keeps the plain at-least-once behavior.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		defer func() { _ = rdb.Close() }()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}

		r.With(handler.Idempotency(rdb, cfg.IdempotencyTTL)).
			Post("/api/applications", applicationHandler.Submit)
		logger.Info("Submission idempotency enabled", slog.String("redis", cfg.RedisAddr))
	} else {
		r.Post("/api/applications", applicationHandler.Submit)
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	// Create server
	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	log.Printf("Server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}
