package repository

import (
	"context"

	"fileapi/internal/model"
)

// FileRepository defines data access for ingested files and their tag
// associations.
type FileRepository interface {
	// CreateWithTag inserts the file row, resolves (get-or-create) the tag and
	// writes the file_tags association, all inside one transaction. Either all
	// three writes commit or none do.
	CreateWithTag(ctx context.Context, f *model.File, tagName string) (*model.File, error)

	// List returns every file that has its tag association, newest first.
	// A file whose ingestion never committed its association is not returned.
	List(ctx context.Context) ([]model.File, error)
}

// TagRegistry resolves a tag name to its persisted identity, creating the row
// if it does not exist yet. Resolve must be atomic under concurrent first use
// of the same name: at most one row per name ever exists.
type TagRegistry interface {
	Resolve(ctx context.Context, tagName string) (*model.Tag, error)
}
