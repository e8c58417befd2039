package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"fileapi/internal/apperr"
	"fileapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "email", "password_digest", "full_name", "created_at"}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	u := &model.User{
		Username:       "alice",
		Email:          "alice@x.com",
		PasswordDigest: "$2a$10$digest",
		FullName:       "Alice",
	}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow("gen-id", u.Username, u.Email, u.PasswordDigest, u.FullName, time.Now().UTC())

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Username, u.Email, u.PasswordDigest, u.FullName).
			WillReturnRows(rows)

		created, err := repo.Create(ctx, u)

		assert.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "gen-id", created.ID)
		assert.Equal(t, "alice", created.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username maps to conflict", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Username, u.Email, u.PasswordDigest, u.FullName).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		created, err := repo.Create(ctx, u)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.Contains(t, err.Error(), "username")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Username, u.Email, u.PasswordDigest, u.FullName).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		created, err := repo.Create(ctx, u)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.Contains(t, err.Error(), "email")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unrelated error passes through", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Username, u.Email, u.PasswordDigest, u.FullName).
			WillReturnError(sql.ErrConnDone)

		created, err := repo.Create(ctx, u)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NotErrorIs(t, err, apperr.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow("u1", "alice", "alice@x.com", "digest", "Alice", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("alice@x.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "alice@x.com")

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "digest", u.PasswordDigest)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("missing@x.com").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByEmail(ctx, "missing@x.com")

		assert.Nil(t, u)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestUserPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)

	rows := sqlmock.NewRows(userColumns).
		AddRow("u1", "alice", "alice@x.com", "d1", "Alice", time.Now()).
		AddRow("u2", "bob", "bob@x.com", "d2", "Bob", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	users, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
