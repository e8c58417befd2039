// Package apperr contains sentinel errors used across layers for stable error mapping.
// Handlers translate them to HTTP status codes; nothing below the handler layer
// knows about HTTP.
package apperr

import "errors"

var (
	// ErrValidation indicates missing or malformed input. Wrap it with a safe,
	// field-level message: fmt.Errorf("%w: email is required", apperr.ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials indicates a failed login. Deliberately shared between
	// unknown identifier and wrong password so the response leaks neither.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoToken indicates a protected request carried no bearer credential.
	ErrNoToken = errors.New("no token")

	// ErrInvalidToken indicates a bearer credential that failed signature or
	// expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrConflict indicates a unique constraint violation (username, email or
	// tag name already taken).
	ErrConflict = errors.New("already exists")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
