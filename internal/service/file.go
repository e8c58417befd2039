package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fileapi/internal/apperr"
	"fileapi/internal/model"
	"fileapi/internal/repository"
	"fileapi/internal/storage"
)

// FileLink is the client-facing view of an ingested file: the original name
// plus a resolvable download URL.
type FileLink struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// FileService defines the ingestion and query use cases for uploads.
type FileService interface {
	// Ingest stores the blob, persists the file row together with its tag
	// association, and returns the refreshed listing. An empty tagHint selects
	// the calendar year of ingestion as the classification period.
	Ingest(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, tagHint string) ([]FileLink, error)

	// List returns every ingested file resolved to a public URL.
	List(ctx context.Context) ([]FileLink, error)
}

type fileService struct {
	store   storage.BlobStore
	repo    repository.FileRepository
	baseURL *url.URL
}

// NewFileService constructs a FileService. publicBaseURL is the address under
// which stored objects are served, e.g. http://localhost:8080/uploads.
func NewFileService(store storage.BlobStore, repo repository.FileRepository, publicBaseURL string) (FileService, error) {
	if publicBaseURL == "" {
		return nil, fmt.Errorf("public base URL is required")
	}
	base, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse public base URL: %w", err)
	}
	return &fileService{store: store, repo: repo, baseURL: base}, nil
}

func (s *fileService) Ingest(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, tagHint string) ([]FileLink, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: file is required", apperr.ErrValidation)
	}

	// Collision-free key: generated UUID keeps the original extension only.
	ext := filepath.Ext(originalFilename)
	key := path.Join("uploads", uuid.New().String()+ext)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	now := time.Now().UTC()
	tagName := tagHint
	if tagName == "" {
		tagName = strconv.Itoa(now.Year())
	}

	f := &model.File{
		ID:          uuid.New().String(),
		Filename:    originalFilename,
		StorageKey:  info.Key,
		ContentType: contentType,
		Size:        info.Size,
		UploadedAt:  now,
	}
	if _, err := s.repo.CreateWithTag(ctx, f, tagName); err != nil {
		// The blob is an orphan now; remove it so nothing half-ingested survives.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; orphan blob cleanup failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	return s.List(ctx)
}

func (s *fileService) List(ctx context.Context) ([]FileLink, error) {
	files, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	links := make([]FileLink, 0, len(files))
	for _, f := range files {
		links = append(links, FileLink{
			Filename: f.Filename,
			URL:      s.resolveURL(f.StorageKey),
		})
	}
	return links, nil
}

// resolveURL joins the terminal segment of the storage key onto the public
// base address. The key is a structured object reference with "/" separators,
// so path.Base is exact regardless of the platform the server runs on.
func (s *fileService) resolveURL(storageKey string) string {
	return s.baseURL.JoinPath(path.Base(storageKey)).String()
}
