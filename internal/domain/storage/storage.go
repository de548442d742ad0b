//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	appErrors "freight-tms/pkg/errors"
)

var (
	ErrTicketNotFound = fmt.Errorf("upload ticket %w", appErrors.ErrNotFound)
	ErrFileNotFound   = fmt.Errorf("file %w", appErrors.ErrNotFound)
	ErrFileTooLarge   = errors.New("file exceeds the upload size limit")
)

// Ticket authorizes exactly one upload before it expires.
type Ticket struct {
	Token     string
	IssuedBy  string
	ExpiresAt time.Time
}

type TicketStore interface {
	Issue(ctx context.Context, issuedBy string, ttl time.Duration) (*Ticket, error)
	// Consume returns the ticket and deletes it. A second call yields ErrTicketNotFound.
	Consume(ctx context.Context, token string) (*Ticket, error)
}

type FileInfo struct {
	ID          string
	ContentType string
	Size        int64
}

type BlobStore interface {
	Put(ctx context.Context, contentType string, r io.Reader) (*FileInfo, error)
	Open(ctx context.Context, id string) (io.ReadCloser, *FileInfo, error)
	// Stat returns ErrFileNotFound when id does not name a stored file.
	Stat(ctx context.Context, id string) (*FileInfo, error)
}
