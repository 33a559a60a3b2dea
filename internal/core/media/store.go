// Package media stores uploaded post images on disk. Posts reference
// images by opaque key; the feed core never touches image bytes.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidBasePath is returned when the store base path is empty
	ErrInvalidBasePath = errors.New("media base path cannot be empty")
	// ErrNotFound is returned when a media key does not resolve to a file
	ErrNotFound = errors.New("media not found")
)

// DiskStore writes uploaded images under a single base directory, one
// file per key
type DiskStore struct {
	basePath string
}

// NewDiskStore creates the base directory if needed and returns a store
// rooted there
func NewDiskStore(basePath string) (*DiskStore, error) {
	if basePath == "" {
		return nil, ErrInvalidBasePath
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &DiskStore{basePath: basePath}, nil
}

// Save stores the uploaded file and returns its key. Keys are random
// UUIDs plus the original extension; the client-supplied filename never
// reaches the filesystem.
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	key := uuid.New().String() + safeExt(filename)

	f, err := os.Create(filepath.Join(s.basePath, key))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return key, nil
}

// Path resolves a key to its on-disk path for serving. Fails with
// ErrNotFound for unknown or malformed keys.
func (s *DiskStore) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", ErrNotFound
	}

	path := filepath.Join(s.basePath, key)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}

	return path, nil
}

// safeExt keeps a short, alphanumeric extension and drops anything else
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || len(ext) > 8 {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
