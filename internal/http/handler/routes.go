package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"fileapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. guard is the
// bearer-token middleware applied to every protected operation.
func RegisterRoutes(app *fiber.App, db *sql.DB, authSvc service.AuthService, fileSvc service.FileService, guard fiber.Handler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Post("/signup", Signup(authSvc))
	api.Post("/login", Login(authSvc))
	api.Get("/users", guard, ListUsers(authSvc))
	api.Post("/upload", guard, UploadFile(fileSvc))
	api.Get("/files", guard, ListFiles(fileSvc))
}
