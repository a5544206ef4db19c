package storage

import (
	"context"
	"io"
)

// BlobStore stores uploaded photos, signature images and generated report
// documents, and hands back stable retrievable URLs.
type BlobStore interface {
	// Save writes the blob under key and returns its public URL.
	Save(ctx context.Context, key string, reader io.Reader) (string, error)

	// Open reads a stored blob (used by the download handler).
	Open(key string) (io.ReadCloser, error)

	// URL returns the public URL for a stored key.
	URL(key string) string
}
