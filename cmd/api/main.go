package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fileapi/internal/auth"
	"fileapi/internal/config"
	"fileapi/internal/database"
	"fileapi/internal/database/migration"
	handlers "fileapi/internal/http/handler"
	"fileapi/internal/http/middleware"
	"fileapi/internal/otel"
	"fileapi/internal/repository/postgres"
	"fileapi/internal/service"
	"fileapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing bootstrap; degrades to noop when no collector is configured
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Blob sink for uploaded content (MinIO or any S3-compatible store)
	blobs, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Credential primitives
	hasher := auth.NewBcryptHasher(0)
	tokens, err := auth.NewTokenIssuer(cfg.JWT)
	if err != nil {
		log.Fatalf("failed to initialize token issuer: %v", err)
	}

	// Repositories and services
	userRepo := postgres.NewUserPostgres(db)
	fileRepo := postgres.NewFilePostgres(db)
	authSvc := service.NewAuthService(userRepo, hasher, tokens)
	fileSvc, err := service.NewFileService(blobs, fileRepo, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("failed to initialize file service: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Global middleware: request IDs, structured request logs, traces, metrics
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Routes with the bearer guard on protected operations
	handlers.RegisterRoutes(app, db, authSvc, fileSvc, middleware.RequireAuth(tokens))

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
