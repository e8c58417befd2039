package model

import "time"

// File represents one ingested upload.
// StorageKey is the object key inside the blob store, not a filesystem path;
// public URLs are derived from it by the service layer.
type File struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Tag is a deduplicated classification label. Names are globally unique.
type Tag struct {
	ID      string `json:"id"`
	TagName string `json:"tag_name"`
}

// FileTag links a file to its tag. Exactly one row exists per ingested file.
type FileTag struct {
	FileID string `json:"file_id"`
	TagID  string `json:"tag_id"`
}
