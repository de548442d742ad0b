package storage

import (
	"context"
	"errors"
	"fmt"
	domainStorage "freight-tms/internal/domain/storage"
	"freight-tms/internal/logger"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const metaSuffix = ".type"

// LocalStore keeps each blob as a file named by its storage ID, with the
// content type in a sidecar file.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	logger.Info("Blob storage ready", zap.String("root", root))
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Put(ctx context.Context, contentType string, r io.Reader) (*domainStorage.FileInfo, error) {
	id := uuid.NewString()

	tmp, err := os.CreateTemp(s.root, "upload-*")
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, &contextReader{ctx: ctx, r: r})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	if err := os.WriteFile(s.path(id)+metaSuffix, []byte(contentType), 0o640); err != nil {
		return nil, fmt.Errorf("write upload metadata: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(id)); err != nil {
		_ = os.Remove(s.path(id) + metaSuffix)
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return &domainStorage.FileInfo{ID: id, ContentType: contentType, Size: size}, nil
}

func (s *LocalStore) Open(_ context.Context, id string) (io.ReadCloser, *domainStorage.FileInfo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, domainStorage.ErrFileNotFound
	}

	f, err := os.Open(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, domainStorage.ErrFileNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("stat file: %w", err)
	}

	return f, s.info(id, stat.Size()), nil
}

func (s *LocalStore) Stat(_ context.Context, id string) (*domainStorage.FileInfo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainStorage.ErrFileNotFound
	}

	stat, err := os.Stat(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, domainStorage.ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return s.info(id, stat.Size()), nil
}

func (s *LocalStore) info(id string, size int64) *domainStorage.FileInfo {
	contentType := "application/octet-stream"
	if meta, err := os.ReadFile(s.path(id) + metaSuffix); err == nil {
		if v := strings.TrimSpace(string(meta)); v != "" {
			contentType = v
		}
	}
	return &domainStorage.FileInfo{ID: id, ContentType: contentType, Size: size}
}

func (s *LocalStore) path(id string) string {
	return filepath.Join(s.root, id)
}

// contextReader stops a copy once the request is gone.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
