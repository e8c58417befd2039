package repository

import (
	"context"

	"fileapi/internal/model"
)

// UserRepository defines data access for user accounts. No business logic here,
// strictly persistence operations; uniqueness is enforced by the schema and
// surfaced as apperr.ErrConflict.
type UserRepository interface {
	// Create inserts a new user row and returns the stored record.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns the user registered under the given email, or
	// apperr.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// List returns all users, oldest first.
	List(ctx context.Context) ([]model.User, error)
}
