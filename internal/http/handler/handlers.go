package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"fileapi/internal/service"
)

// filesResponse is the body shared by the upload and listing endpoints.
type filesResponse struct {
	Message string             `json:"message"`
	Files   []service.FileLink `json:"files"`
}

// HealthCheck reports whether the database dependency is reachable.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Signup registers a new account.
func Signup(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SignupInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		user, err := svc.Signup(c.UserContext(), in)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

type loginRequest struct {
	// Identifier is the account email.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login authenticates and returns a bearer token.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in loginRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		res, err := svc.Login(c.UserContext(), in.Identifier, in.Password)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListUsers returns all registered users. Protected.
func ListUsers(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.ListUsers(c.UserContext())
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(users)
	}
}

// UploadFile ingests a single multipart file (field name: file, optional
// field: tag) and responds with the refreshed listing. Protected.
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		links, err := svc.Ingest(c.UserContext(), f, fh.Filename, ct, fh.Size, c.FormValue("tag"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(filesResponse{
			Message: "file uploaded",
			Files:   links,
		})
	}
}

// ListFiles returns every ingested file with its download URL. Protected.
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		links, err := svc.List(c.UserContext())
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(filesResponse{
			Message: "files retrieved",
			Files:   links,
		})
	}
}
