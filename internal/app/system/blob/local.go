package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes blobs under a root directory on the local filesystem.
// Uploaded files are served back by the app's file server mounted at the
// configured URL prefix.
type LocalStore struct {
	root    string
	baseURL string
}

// NewLocalStore creates the root directory if needed.
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put writes the blob at the given storage path, creating parent
// directories as needed. The content type is recorded by the caller in
// the document metadata; the filesystem backend has no use for it.
func (s *LocalStore) Put(ctx context.Context, p string, r io.Reader, contentType string) error {
	full, err := s.fullPath(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create blob file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("write blob: %w", err)
	}
	return f.Close()
}

// Delete removes the blob. Missing blobs are an error so callers can log
// the best-effort failure.
func (s *LocalStore) Delete(ctx context.Context, p string) error {
	full, err := s.fullPath(p)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// URL returns the public download URL for a stored path.
func (s *LocalStore) URL(p string) string {
	return s.baseURL + "/" + path.Clean(p)
}

// fullPath resolves a storage path inside the root, rejecting traversal.
func (s *LocalStore) fullPath(p string) (string, error) {
	clean := path.Clean("/" + p)
	if clean == "/" || strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid storage path %q", p)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}
