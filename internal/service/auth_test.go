package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fileapi/internal/apperr"
	"fileapi/internal/auth"
	"fileapi/internal/config"
	"fileapi/internal/model"
	repoMocks "fileapi/internal/repository/mocks"
)

func newTestAuthService(t *testing.T, users *repoMocks.MockUserRepository) AuthService {
	t.Helper()
	hasher := auth.NewBcryptHasher(4)
	issuer, err := auth.NewTokenIssuer(config.JWTConfig{Secret: "test-secret", ExpirationSec: 3600})
	require.NoError(t, err)
	return NewAuthService(users, hasher, issuer)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := newTestAuthService(t, users)

		users.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "alice" &&
				u.Email == "alice@x.com" &&
				u.PasswordDigest != "" &&
				u.PasswordDigest != "pw123"
		})).Return(&model.User{ID: "u1", Username: "alice", Email: "alice@x.com"}, nil)

		created, err := svc.Signup(ctx, SignupInput{
			Username: "alice",
			Email:    "alice@x.com",
			Password: "pw123",
			FullName: "Alice",
		})

		assert.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "u1", created.ID)
		users.AssertExpectations(t)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := newTestAuthService(t, users)

		cases := []SignupInput{
			{Email: "a@x.com", Password: "pw"},
			{Username: "a", Password: "pw"},
			{Username: "a", Email: "a@x.com"},
		}
		for _, in := range cases {
			_, err := svc.Signup(ctx, in)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		}
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate surfaces conflict", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := newTestAuthService(t, users)

		users.On("Create", ctx, mock.Anything).Return(nil, apperr.ErrConflict)

		_, err := svc.Signup(ctx, SignupInput{Username: "alice", Email: "alice@x.com", Password: "pw"})
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptHasher(4)

	digest, err := hasher.Hash("pw123")
	require.NoError(t, err)

	storedUser := &model.User{ID: "u1", Username: "alice", Email: "alice@x.com", PasswordDigest: digest}

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		issuer, err := auth.NewTokenIssuer(config.JWTConfig{Secret: "test-secret", ExpirationSec: 3600})
		require.NoError(t, err)
		svc := NewAuthService(users, hasher, issuer)

		users.On("FindByEmail", ctx, "alice@x.com").Return(storedUser, nil)

		res, err := svc.Login(ctx, "alice@x.com", "pw123")

		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "alice", res.User.Username)

		p, err := issuer.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", p.UserID)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := newTestAuthService(t, users)

		users.On("FindByEmail", ctx, "alice@x.com").Return(storedUser, nil)
		users.On("FindByEmail", ctx, "ghost@x.com").Return(nil, apperr.ErrNotFound)

		_, errWrongPw := svc.Login(ctx, "alice@x.com", "nope")
		_, errUnknown := svc.Login(ctx, "ghost@x.com", "pw123")

		assert.ErrorIs(t, errWrongPw, apperr.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, apperr.ErrInvalidCredentials)
		assert.Equal(t, errWrongPw.Error(), errUnknown.Error())
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := newTestAuthService(t, users)

		_, err := svc.Login(ctx, "", "pw")
		assert.ErrorIs(t, err, apperr.ErrValidation)

		_, err = svc.Login(ctx, "alice@x.com", "")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("storage error passes through untranslated", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		svc := newTestAuthService(t, users)

		users.On("FindByEmail", ctx, "alice@x.com").Return(nil, errors.New("db down"))

		_, err := svc.Login(ctx, "alice@x.com", "pw123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperr.ErrInvalidCredentials)
	})
}

func TestAuthService_ListUsers(t *testing.T) {
	ctx := context.Background()
	users := new(repoMocks.MockUserRepository)
	svc := newTestAuthService(t, users)

	users.On("List", ctx).Return([]model.User{{ID: "u1", Username: "alice"}}, nil)

	got, err := svc.ListUsers(ctx)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	users.AssertExpectations(t)
}
