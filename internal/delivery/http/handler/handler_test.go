package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainClient "freight-tms/internal/domain/client"
	clientMocks "freight-tms/internal/domain/client/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	"freight-tms/internal/domain/storage"
	storageMocks "freight-tms/internal/domain/storage/mocks"
	"freight-tms/internal/middleware"
	"freight-tms/internal/usecase/access"
	"freight-tms/internal/usecase/client"
	"freight-tms/internal/usecase/upload"
	appErrors "freight-tms/pkg/errors"
	"freight-tms/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withCaller stands in for AuthMiddleware.
func withCaller(accountID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accountID != uuid.Nil {
			c.Set(middleware.AccountIDKey, accountID)
		}
		c.Next()
	}
}

func perform(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not authenticated", appErrors.ErrNotAuthenticated, http.StatusUnauthorized},
		{"invalid credentials", appErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", appErrors.Forbidden("no"), http.StatusForbidden},
		{"profile missing", appErrors.ErrProfileNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load %w", appErrors.ErrNotFound), http.StatusNotFound},
		{"validation", appErrors.Validation("Invalid input", errors.New("bad")), http.StatusBadRequest},
		{"weak password", appErrors.NewAppError(appErrors.CodeWeakPassword, "weak", nil), http.StatusBadRequest},
		{"conflict", appErrors.ErrAccountAlreadyExists, http.StatusConflict},
		{"invalid state", appErrors.ErrInvalidState, http.StatusConflict},
		{"too large", storage.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondWithError(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestRespondWithError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondWithError(c, errors.New("pq: password authentication failed"))
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("internal error leaked: %s", w.Body.String())
	}
}

func newClientRouter(t *testing.T, accountID uuid.UUID) (*gin.Engine, *clientMocks.MockRepository) {
	ctrl := gomock.NewController(t)
	clients := clientMocks.NewMockRepository(ctrl)
	profiles := profileMocks.NewMockRepository(ctrl)
	profiles.EXPECT().GetByAccountID(gomock.Any(), gomock.Any()).
		Return(&domainProfile.Profile{ID: uuid.New(), AccountID: accountID, Role: domainProfile.RoleSupport}, nil).
		AnyTimes()

	r := gin.New()
	api := r.Group("/api/v1", withCaller(accountID))
	NewClientHandler(client.NewService(clients, storageMocks.NewMockBlobStore(ctrl), access.NewResolver(profiles))).RegisterRoutes(api)
	return r, clients
}

func TestClientHandler_Create(t *testing.T) {
	r, clients := newClientRouter(t, uuid.New())
	clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, c *domainClient.Client) error {
		c.ID = uuid.New()
		return nil
	})

	body := `{"business_type":"Shipper","business_name":"Acme","street_address":"1 Main St","city":"Austin",
		"state":"TX","zip":"73301","country":"USA","ein":"12-3456789","poc_name":"Lee",
		"poc_dob":"1980-05-01","poc_phone":"512-555-0101"}`
	w := perform(r, http.MethodPost, "/api/v1/clients", strings.NewReader(body))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if resp := decode(t, w); !resp.Success {
		t.Errorf("expected success envelope, got %+v", resp)
	}
}

func TestClientHandler_CreateInvalid(t *testing.T) {
	r, _ := newClientRouter(t, uuid.New())

	w := perform(r, http.MethodPost, "/api/v1/clients", strings.NewReader(`{"business_type":"Retailer"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestClientHandler_MalformedBody(t *testing.T) {
	r, _ := newClientRouter(t, uuid.New())

	w := perform(r, http.MethodPost, "/api/v1/clients", strings.NewReader(`{`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestClientHandler_BadID(t *testing.T) {
	r, _ := newClientRouter(t, uuid.New())

	w := perform(r, http.MethodGet, "/api/v1/clients/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestClientHandler_NotFound(t *testing.T) {
	r, clients := newClientRouter(t, uuid.New())
	clients.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, domainClient.ErrClientNotFound)

	w := perform(r, http.MethodGet, "/api/v1/clients/"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestClientHandler_Unauthenticated(t *testing.T) {
	r, _ := newClientRouter(t, uuid.Nil)

	w := perform(r, http.MethodGet, "/api/v1/clients", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func newUploadRouter(t *testing.T, maxBytes int64) (*gin.Engine, *storageMocks.MockTicketStore, *storageMocks.MockBlobStore) {
	ctrl := gomock.NewController(t)
	tickets := storageMocks.NewMockTicketStore(ctrl)
	blobs := storageMocks.NewMockBlobStore(ctrl)
	h := NewUploadHandler(upload.NewService(tickets, blobs, "http://api.test", time.Minute, maxBytes))

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterPublicRoutes(api)
	h.RegisterRoutes(api.Group("", withCaller(uuid.New())))
	return r, tickets, blobs
}

func TestUploadHandler_Upload(t *testing.T) {
	r, tickets, blobs := newUploadRouter(t, 1024)
	tickets.EXPECT().Consume(gomock.Any(), "tok").Return(&storage.Ticket{Token: "tok"}, nil)
	blobs.EXPECT().Put(gomock.Any(), "application/pdf", gomock.Any()).
		DoAndReturn(func(_ interface{}, contentType string, r io.Reader) (*storage.FileInfo, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return &storage.FileInfo{ID: uuid.NewString(), ContentType: contentType, Size: int64(len(data))}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/uploads/tok", bytes.NewReader([]byte("%PDF-1.4")))
	req.Header.Set("Content-Type", "application/pdf")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadHandler_UnknownTicket(t *testing.T) {
	r, tickets, _ := newUploadRouter(t, 1024)
	tickets.EXPECT().Consume(gomock.Any(), "gone").Return(nil, storage.ErrTicketNotFound)

	w := perform(r, http.MethodPut, "/api/v1/uploads/gone", strings.NewReader("x"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUploadHandler_TooLarge(t *testing.T) {
	r, tickets, blobs := newUploadRouter(t, 4)
	tickets.EXPECT().Consume(gomock.Any(), "tok").Return(&storage.Ticket{Token: "tok"}, nil)
	blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, r io.Reader) (*storage.FileInfo, error) {
			_, err := io.ReadAll(r)
			return nil, err
		})

	w := perform(r, http.MethodPut, "/api/v1/uploads/tok", strings.NewReader("0123456789"))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}

func TestUploadHandler_GenerateURL(t *testing.T) {
	r, tickets, _ := newUploadRouter(t, 1024)
	tickets.EXPECT().Issue(gomock.Any(), gomock.Any(), time.Minute).
		Return(&storage.Ticket{Token: "abc", ExpiresAt: time.Now().Add(time.Minute)}, nil)

	w := perform(r, http.MethodPost, "/api/v1/uploads", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http://api.test/api/v1/uploads/abc") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestUploadHandler_Download(t *testing.T) {
	r, _, blobs := newUploadRouter(t, 1024)
	id := uuid.NewString()
	blobs.EXPECT().Open(gomock.Any(), id).
		Return(io.NopCloser(strings.NewReader("hello")), &storage.FileInfo{ID: id, ContentType: "text/plain", Size: 5}, nil)

	w := perform(r, http.MethodGet, "/api/v1/files/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "hello" || w.Header().Get("Content-Type") != "text/plain" {
		t.Errorf("unexpected response %q %q", w.Body.String(), w.Header().Get("Content-Type"))
	}
}
