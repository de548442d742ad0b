package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	domainStorage "freight-tms/internal/domain/storage"

	"github.com/google/uuid"
)

func TestLocalStore_PutOpen(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	info, err := store.Put(context.Background(), "application/pdf", strings.NewReader("%PDF-1.4 rate con"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Size != 17 {
		t.Fatalf("expected 17 bytes, got %d", info.Size)
	}

	rc, got, err := store.Open(context.Background(), info.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "%PDF-1.4 rate con" || got.ContentType != "application/pdf" {
		t.Fatalf("unexpected file %q %+v", data, got)
	}
}

func TestLocalStore_OpenUnknown(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	for _, id := range []string{uuid.NewString(), "../../etc/passwd"} {
		if _, _, err := store.Open(context.Background(), id); !errors.Is(err, domainStorage.ErrFileNotFound) {
			t.Fatalf("Open(%q): expected ErrFileNotFound, got %v", id, err)
		}
	}
}

func TestLocalStore_Stat(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	info, err := store.Put(context.Background(), "image/png", strings.NewReader("png"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Stat(context.Background(), info.ID)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if got.Size != 3 || got.ContentType != "image/png" {
		t.Fatalf("unexpected info %+v", got)
	}

	for _, id := range []string{uuid.NewString(), "../../etc/passwd"} {
		if _, err := store.Stat(context.Background(), id); !errors.Is(err, domainStorage.ErrFileNotFound) {
			t.Fatalf("Stat(%q): expected ErrFileNotFound, got %v", id, err)
		}
	}
}

func TestLocalStore_PutPropagatesReaderError(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	_, err = store.Put(context.Background(), "text/plain", io.MultiReader(strings.NewReader("abc"), errReader{}))
	if !errors.Is(err, domainStorage.ErrFileTooLarge) {
		t.Fatalf("expected wrapped reader error, got %v", err)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, domainStorage.ErrFileTooLarge }
