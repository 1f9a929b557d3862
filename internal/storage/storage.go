// Package storage abstracts where uploaded media binaries live. The catalog
// only ever records the public URL a backend hands back.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrObjectNotFound is returned by Delete when the object is already gone.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore writes and removes media binaries addressed by a key such as
// "lakes/1717171717-abcd1234.jpg".
type ObjectStore interface {
	// Put stores data under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Delete removes the object for key.
	Delete(ctx context.Context, key string) error
	// KeyForURL maps a public URL this store produced back to its key.
	KeyForURL(rawURL string) (string, bool)
}

// LocalStore keeps objects on the local filesystem under dir and serves them
// from urlPath. It is the development fallback when no bucket is configured.
type LocalStore struct {
	dir     string
	urlPath string
}

// NewLocalStore builds a LocalStore rooted at dir, published under urlPath.
func NewLocalStore(dir, urlPath string) *LocalStore {
	return &LocalStore{
		dir:     strings.TrimRight(dir, "/"),
		urlPath: "/" + strings.Trim(urlPath, "/"),
	}
}

// Put writes the object to disk, creating category subdirectories as needed.
func (s *LocalStore) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	cleaned, err := s.cleanKey(key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.urlPath + "/" + cleaned, nil
}

// Delete removes the object file.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	cleaned, err := s.cleanKey(key)
	if err != nil {
		return err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(cleaned))
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// KeyForURL strips the public path prefix.
func (s *LocalStore) KeyForURL(rawURL string) (string, bool) {
	prefix := s.urlPath + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(rawURL, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

func (s *LocalStore) cleanKey(key string) (string, error) {
	cleaned := strings.Trim(key, "/")
	if cleaned == "" || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return cleaned, nil
}
