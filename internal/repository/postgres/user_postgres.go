package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"fileapi/internal/apperr"
	"fileapi/internal/model"
	"fileapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// pgUniqueViolation is the SQLSTATE for a unique constraint violation.
const pgUniqueViolation = "23505"

// conflictError maps a unique violation to apperr.ErrConflict with a safe,
// field-level detail derived from the constraint name. Returns nil if err is
// not a unique violation.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return fmt.Errorf("%w: username already taken", apperr.ErrConflict)
	case strings.Contains(pgErr.ConstraintName, "email"):
		return fmt.Errorf("%w: email already taken", apperr.ErrConflict)
	default:
		return apperr.ErrConflict
	}
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (username, email, password_digest, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_digest, full_name, created_at
	`
	row := r.db.QueryRowContext(ctx, q, u.Username, u.Email, u.PasswordDigest, u.FullName)

	var out model.User
	if err := row.Scan(
		&out.ID,
		&out.Username,
		&out.Email,
		&out.PasswordDigest,
		&out.FullName,
		&out.CreatedAt,
	); err != nil {
		if cerr := conflictError(err); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}
	return &out, nil
}

// FindByEmail fetches a single user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT id, username, email, password_digest, full_name, created_at
		FROM users
		WHERE email = $1
	`
	row := r.db.QueryRowContext(ctx, q, email)

	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordDigest,
		&u.FullName,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users ordered by creation time.
func (r *UserPostgres) List(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT id, username, email, password_digest, full_name, created_at
		FROM users
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.PasswordDigest,
			&u.FullName,
			&u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
