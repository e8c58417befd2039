package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fileapi/internal/model"
	"fileapi/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

// CreateWithTag writes the file row, the tag (get-or-create) and the
// association as one transaction. A file can therefore never be persisted
// without its tag link.
func (r *FilePostgres) CreateWithTag(ctx context.Context, f *model.File, tagName string) (*model.File, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const insertFile = `
		INSERT INTO files (id, filename, storage_key, content_type, size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, storage_key, content_type, size, uploaded_at
	`
	var out model.File
	err = tx.QueryRowContext(ctx, insertFile,
		f.ID,
		f.Filename,
		f.StorageKey,
		f.ContentType,
		f.Size,
		f.UploadedAt,
	).Scan(
		&out.ID,
		&out.Filename,
		&out.StorageKey,
		&out.ContentType,
		&out.Size,
		&out.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}

	tag, err := resolveTag(ctx, tx, tagName)
	if err != nil {
		return nil, fmt.Errorf("resolve tag: %w", err)
	}

	const insertAssoc = `INSERT INTO file_tags (file_id, tag_id) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, insertAssoc, out.ID, tag.ID); err != nil {
		return nil, fmt.Errorf("insert file_tag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &out, nil
}

// List returns files joined to their associations, newest first. The INNER
// JOIN keeps any file from an interrupted ingestion out of the listing.
func (r *FilePostgres) List(ctx context.Context) ([]model.File, error) {
	const q = `
		SELECT f.id, f.filename, f.storage_key, f.content_type, f.size, f.uploaded_at
		FROM files f
		JOIN file_tags ft ON ft.file_id = f.id
		ORDER BY f.uploaded_at DESC, f.id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]model.File, 0)
	for rows.Next() {
		var f model.File
		if err := rows.Scan(
			&f.ID,
			&f.Filename,
			&f.StorageKey,
			&f.ContentType,
			&f.Size,
			&f.UploadedAt,
		); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return files, nil
}
