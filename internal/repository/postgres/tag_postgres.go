package postgres

import (
	"context"
	"database/sql"

	"fileapi/internal/model"
	"fileapi/internal/repository"
)

// upsertTagSQL makes get-or-create a single atomic statement. The no-op
// DO UPDATE exists so RETURNING yields the surviving row on conflict too;
// concurrent first use of a name can never leave two rows behind.
const upsertTagSQL = `
	INSERT INTO tags (tag_name)
	VALUES ($1)
	ON CONFLICT (tag_name) DO UPDATE SET tag_name = EXCLUDED.tag_name
	RETURNING id, tag_name
`

// rowQuerier is satisfied by both *sql.DB and *sql.Tx so the upsert can run
// standalone or inside the ingestion transaction.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func resolveTag(ctx context.Context, q rowQuerier, tagName string) (*model.Tag, error) {
	var t model.Tag
	if err := q.QueryRowContext(ctx, upsertTagSQL, tagName).Scan(&t.ID, &t.TagName); err != nil {
		return nil, err
	}
	return &t, nil
}

// TagPostgres is a PostgreSQL implementation of repository.TagRegistry.
type TagPostgres struct {
	db *sql.DB
}

// NewTagPostgres creates a new TagPostgres registry.
func NewTagPostgres(db *sql.DB) *TagPostgres {
	return &TagPostgres{db: db}
}

var _ repository.TagRegistry = (*TagPostgres)(nil)

// Resolve returns the tag for tagName, creating it atomically if absent.
func (r *TagPostgres) Resolve(ctx context.Context, tagName string) (*model.Tag, error) {
	return resolveTag(ctx, r.db, tagName)
}
