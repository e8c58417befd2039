package model

import "time"

// User is a registered account. The password digest never leaves the server:
// the json tag excludes it from every client-facing response.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	FullName       string    `json:"full_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// Principal is the identity decoded from a verified bearer token.
// It carries only the claims needed downstream, never the full User row.
type Principal struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
