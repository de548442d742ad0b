package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"freight-tms/internal/domain/storage"
	storageMocks "freight-tms/internal/domain/storage/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T, maxBytes int64) (*Service, *storageMocks.MockTicketStore, *storageMocks.MockBlobStore) {
	ctrl := gomock.NewController(t)
	tickets := storageMocks.NewMockTicketStore(ctrl)
	blobs := storageMocks.NewMockBlobStore(ctrl)
	return NewService(tickets, blobs, "https://tms.example.com/", 15*time.Minute, maxBytes), tickets, blobs
}

func TestGenerateUploadURL(t *testing.T) {
	svc, tickets, _ := setup(t, 0)
	caller := access.Caller{AccountID: uuid.New()}
	expires := time.Now().Add(15 * time.Minute)
	tickets.EXPECT().Issue(gomock.Any(), caller.AccountID.String(), 15*time.Minute).
		Return(&storage.Ticket{Token: "abc123", IssuedBy: caller.AccountID.String(), ExpiresAt: expires}, nil)

	resp, err := svc.GenerateUploadURL(context.Background(), caller)
	if err != nil {
		t.Fatalf("GenerateUploadURL: %v", err)
	}
	if resp.UploadURL != "https://tms.example.com/api/v1/uploads/abc123" {
		t.Fatalf("unexpected url %q", resp.UploadURL)
	}
}

func TestGenerateUploadURL_Unauthenticated(t *testing.T) {
	svc, _, _ := setup(t, 0)

	if _, err := svc.GenerateUploadURL(context.Background(), access.Caller{}); !errors.Is(err, appErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
}

func TestUpload_StoresBody(t *testing.T) {
	svc, tickets, blobs := setup(t, 1024)
	tickets.EXPECT().Consume(gomock.Any(), "abc123").Return(&storage.Ticket{Token: "abc123", IssuedBy: "someone"}, nil)
	blobs.EXPECT().Put(gomock.Any(), "application/pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, contentType string, r io.Reader) (*storage.FileInfo, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return &storage.FileInfo{ID: "file-1", ContentType: contentType, Size: int64(len(data))}, nil
		})

	resp, err := svc.Upload(context.Background(), "abc123", "application/pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if resp.StorageID != "file-1" || resp.Size != 8 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestUpload_DefaultsContentType(t *testing.T) {
	svc, tickets, blobs := setup(t, 0)
	tickets.EXPECT().Consume(gomock.Any(), "t").Return(&storage.Ticket{Token: "t"}, nil)
	blobs.EXPECT().Put(gomock.Any(), defaultContentType, gomock.Any()).
		Return(&storage.FileInfo{ID: "f", ContentType: defaultContentType}, nil)

	if _, err := svc.Upload(context.Background(), "t", "  ", strings.NewReader("x")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
}

func TestUpload_SpentTicket(t *testing.T) {
	svc, tickets, _ := setup(t, 0)
	tickets.EXPECT().Consume(gomock.Any(), "used").Return(nil, storage.ErrTicketNotFound)

	_, err := svc.Upload(context.Background(), "used", "text/plain", strings.NewReader("x"))
	if !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLimitedReader(t *testing.T) {
	within := &limitedReader{r: bytes.NewReader(make([]byte, 10)), left: 11}
	if data, err := io.ReadAll(within); err != nil || len(data) != 10 {
		t.Fatalf("expected 10 bytes and no error, got %d %v", len(data), err)
	}

	over := &limitedReader{r: bytes.NewReader(make([]byte, 11)), left: 11}
	if _, err := io.ReadAll(over); !errors.Is(err, storage.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestOpen_Unauthenticated(t *testing.T) {
	svc, _, _ := setup(t, 0)

	if _, _, err := svc.Open(context.Background(), access.Caller{}, "f"); !errors.Is(err, appErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
}
