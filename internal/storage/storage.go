// Package storage is the blob sink for uploaded content: an S3-compatible
// object store addressed by generated, collision-free keys. Implementations
// stream and never touch local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions define optional parameters for storing blobs.
// Size should be the exact number of bytes if known; -1 lets the backend
// buffer/chunk as it supports. ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// BlobStore is the durable sink for uploaded content.
// Put must be collision-free for distinct keys; Delete exists so a failed
// ingestion can remove its orphan blob.
type BlobStore interface {
	// Put stores the blob under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes a blob by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for deployments whose
	// bucket is not mapped to a public path.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
