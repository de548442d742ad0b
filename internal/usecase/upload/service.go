package upload

import (
	"context"
	"freight-tms/internal/domain/storage"
	"freight-tms/internal/logger"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultContentType = "application/octet-stream"

type Service struct {
	tickets  storage.TicketStore
	blobs    storage.BlobStore
	baseURL  string
	ttl      time.Duration
	maxBytes int64
}

func NewService(tickets storage.TicketStore, blobs storage.BlobStore, publicBaseURL string, ttl time.Duration, maxBytes int64) *Service {
	return &Service{
		tickets:  tickets,
		blobs:    blobs,
		baseURL:  strings.TrimRight(publicBaseURL, "/"),
		ttl:      ttl,
		maxBytes: maxBytes,
	}
}

// GenerateUploadURL issues a one-shot ticket for the caller.
func (s *Service) GenerateUploadURL(ctx context.Context, caller access.Caller) (*UploadURLResponse, error) {
	if caller.IsZero() {
		return nil, appErrors.ErrNotAuthenticated
	}

	ticket, err := s.tickets.Issue(ctx, caller.AccountID.String(), s.ttl)
	if err != nil {
		return nil, err
	}

	logger.Debug("Upload ticket issued",
		zap.String("account_id", caller.AccountID.String()),
		zap.Time("expires_at", ticket.ExpiresAt),
		zap.String("event", "upload_ticket_issued"),
	)

	return &UploadURLResponse{
		UploadURL: s.baseURL + "/api/v1/uploads/" + ticket.Token,
		ExpiresAt: ticket.ExpiresAt,
	}, nil
}

// Upload redeems a ticket and stores the body. The ticket is spent even if the write fails.
func (s *Service) Upload(ctx context.Context, token, contentType string, body io.Reader) (*UploadResponse, error) {
	ticket, err := s.tickets.Consume(ctx, token)
	if err != nil {
		return nil, err
	}

	if contentType = strings.TrimSpace(contentType); contentType == "" {
		contentType = defaultContentType
	}

	if s.maxBytes > 0 {
		body = &limitedReader{r: body, left: s.maxBytes + 1}
	}

	info, err := s.blobs.Put(ctx, contentType, body)
	if err != nil {
		logger.Warn("Upload failed",
			zap.String("issued_by", ticket.IssuedBy),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Info("File uploaded",
		zap.String("storage_id", info.ID),
		zap.String("issued_by", ticket.IssuedBy),
		zap.Int64("size", info.Size),
		zap.String("event", "file_uploaded"),
	)

	return &UploadResponse{StorageID: info.ID, ContentType: info.ContentType, Size: info.Size}, nil
}

// Open streams a stored file. The caller closes the reader.
func (s *Service) Open(ctx context.Context, caller access.Caller, storageID string) (io.ReadCloser, *storage.FileInfo, error) {
	if caller.IsZero() {
		return nil, nil, appErrors.ErrNotAuthenticated
	}
	return s.blobs.Open(ctx, storageID)
}

// limitedReader fails with ErrFileTooLarge once the body passes the limit.
type limitedReader struct {
	r    io.Reader
	left int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if int64(len(p)) > l.left {
		p = p[:l.left]
	}
	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left <= 0 {
		return 0, storage.ErrFileTooLarge
	}
	return n, err
}
