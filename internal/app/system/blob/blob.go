// Package blob abstracts the managed blob storage the library feature
// uploads files to.
package blob

import (
	"context"
	"io"
)

// Store is the minimal surface the handlers need: write a blob, remove a
// blob, and produce the public download URL for a stored path.
type Store interface {
	Put(ctx context.Context, path string, r io.Reader, contentType string) error
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
