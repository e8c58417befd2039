package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fileapi/internal/apperr"
	"fileapi/internal/auth"
	"fileapi/internal/model"
	"fileapi/internal/repository"
)

// SignupInput is the request payload for account creation.
type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginResult carries the issued bearer token and a non-sensitive user summary.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// TokenIssuer is the slice of auth.TokenIssuer the auth service needs.
type TokenIssuer interface {
	Issue(userID, username string) (string, time.Time, error)
}

// AuthService defines the credential use cases: signup, login and the
// protected user listing.
type AuthService interface {
	// Signup validates input, hashes the password and creates the account.
	Signup(ctx context.Context, in SignupInput) (*model.User, error)

	// Login authenticates by email and issues a bearer token. The canonical
	// identifier is the account email. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)

	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]model.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens TokenIssuer
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, tokens TokenIssuer) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if in.Username == "" {
		return nil, fmt.Errorf("%w: username is required", apperr.ErrValidation)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", apperr.ErrValidation)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:       in.Username,
		Email:          in.Email,
		PasswordDigest: digest,
		FullName:       in.FullName,
	}
	return s.users.Create(ctx, u)
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", apperr.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}

	u, err := s.users.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// same failure as a wrong password, nothing about the account leaks
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, u.PasswordDigest) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
