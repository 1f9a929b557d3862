package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorePutDeleteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/static/uploads")

	url, err := store.Put(context.Background(), "lakes/123-abcd.jpg", "image/jpeg", []byte("fake-jpeg"))
	if err != nil {
		t.Fatalf("failed to put object: %v", err)
	}
	if url != "/static/uploads/lakes/123-abcd.jpg" {
		t.Fatalf("unexpected public url %q", url)
	}

	onDisk := filepath.Join(dir, "lakes", "123-abcd.jpg")
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("expected object on disk: %v", err)
	}
	if string(data) != "fake-jpeg" {
		t.Fatalf("object content mismatch: %q", data)
	}

	key, ok := store.KeyForURL(url)
	if !ok || key != "lakes/123-abcd.jpg" {
		t.Fatalf("expected key round-trip, got %q %v", key, ok)
	}

	if err := store.Delete(context.Background(), key); err != nil {
		t.Fatalf("failed to delete object: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("expected object removed from disk")
	}
	if err := store.Delete(context.Background(), key); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound on second delete, got %v", err)
	}
}

func TestLocalStoreRejectsTraversalKeys(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/static/uploads")

	if _, err := store.Put(context.Background(), "../escape.jpg", "image/jpeg", []byte("x")); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if _, err := store.Put(context.Background(), "", "image/jpeg", []byte("x")); err == nil {
		t.Fatalf("expected empty key to be rejected")
	}
}

func TestLocalStoreKeyForURLForeignPrefix(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/static/uploads")

	if _, ok := store.KeyForURL("https://cdn.example.com/lakes/a.jpg"); ok {
		t.Fatalf("foreign urls must not map to local keys")
	}
	if _, ok := store.KeyForURL("/static/uploads/"); ok {
		t.Fatalf("bare prefix must not map to a key")
	}
}
