package model

import (
	"context"
	"io"
)

// Storage persists uploaded blobs under a key.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL returns the client-resolvable reference for key.
	URL(key string) string
	// Key maps a reference produced by URL back to its key.
	Key(reference string) (string, bool)
}

// ReferenceChecker confirms that a stored reference still points at bytes.
// Only disk-backed deployments provide one.
type ReferenceChecker interface {
	ReferenceExists(ctx context.Context, reference string) bool
}

// UploadKind selects the directory an upload lands in.
type UploadKind string

const (
	UploadProject    UploadKind = "projects"
	UploadExperience UploadKind = "experience"
	UploadEducation  UploadKind = "education"
)

// File is an uploaded file as received from a client.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}
