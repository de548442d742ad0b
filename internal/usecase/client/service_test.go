package client

import (
	"context"
	"errors"
	"testing"

	domainClient "freight-tms/internal/domain/client"
	clientMocks "freight-tms/internal/domain/client/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	domainStorage "freight-tms/internal/domain/storage"
	storageMocks "freight-tms/internal/domain/storage/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*Service, *clientMocks.MockRepository, *storageMocks.MockBlobStore, access.Caller) {
	ctrl := gomock.NewController(t)
	clients := clientMocks.NewMockRepository(ctrl)
	blobs := storageMocks.NewMockBlobStore(ctrl)
	profiles := profileMocks.NewMockRepository(ctrl)

	me := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: domainProfile.RoleSupport}
	profiles.EXPECT().GetByAccountID(gomock.Any(), me.AccountID).Return(me, nil).AnyTimes()

	return NewService(clients, blobs, access.NewResolver(profiles)), clients, blobs, access.Caller{AccountID: me.AccountID}
}

func TestCreateClient(t *testing.T) {
	svc, clients, _, caller := setup(t)
	clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	c, err := svc.CreateClient(context.Background(), caller, &CreateClientRequest{
		BusinessType:  domainClient.BusinessShipper,
		BusinessName:  "  Acme <b>Foods</b> & Co ",
		StreetAddress: "1 Main St",
		City:          "Austin",
		State:         "TX",
		Zip:           "73301",
		Country:       "USA",
		EIN:           "12-3456789",
		POCName:       "Lee",
		POCDob:        "1980-05-01",
		POCPhone:      "512-555-0101",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if c.BusinessName != "Acme Foods & Co" {
		t.Fatalf("unexpected business name %q", c.BusinessName)
	}
}

func TestCreateClient_InvalidType(t *testing.T) {
	svc, _, _, caller := setup(t)

	_, err := svc.CreateClient(context.Background(), caller, &CreateClientRequest{BusinessType: "Retailer"})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestUpdateClient_PatchesOnlyGivenFields(t *testing.T) {
	svc, clients, _, caller := setup(t)
	existing := &domainClient.Client{ID: uuid.New(), BusinessName: "Acme", City: "Austin", CreditApproved: 1000}
	clients.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	clients.EXPECT().Update(gomock.Any(), existing).Return(nil)

	used := 250.0
	c, err := svc.UpdateClient(context.Background(), caller, existing.ID, &UpdateClientRequest{CreditUsed: &used})
	if err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}
	if c.CreditUsed != 250 || c.BusinessName != "Acme" || c.City != "Austin" || c.CreditApproved != 1000 {
		t.Fatalf("unexpected patch result %+v", c)
	}
}

func TestDeleteClient_NotFound(t *testing.T) {
	svc, clients, _, caller := setup(t)
	id := uuid.New()
	clients.EXPECT().Delete(gomock.Any(), id).Return(domainClient.ErrClientNotFound)

	if err := svc.DeleteClient(context.Background(), caller, id); !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAttachDocuments(t *testing.T) {
	svc, clients, blobs, caller := setup(t)
	existing := &domainClient.Client{ID: uuid.New(), BusinessName: "Acme"}
	docs := uuid.NewString()
	clients.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	blobs.EXPECT().Stat(gomock.Any(), docs).Return(&domainStorage.FileInfo{ID: docs}, nil)
	clients.EXPECT().Update(gomock.Any(), existing).Return(nil)

	c, err := svc.AttachDocuments(context.Background(), caller, existing.ID, &AttachDocumentsRequest{StorageID: docs})
	if err != nil {
		t.Fatalf("AttachDocuments: %v", err)
	}
	if c.DocumentsStorageID == nil || *c.DocumentsStorageID != docs {
		t.Fatalf("expected documents to be attached, got %+v", c.DocumentsStorageID)
	}
}

func TestAttachDocuments_UnknownFile(t *testing.T) {
	svc, clients, blobs, caller := setup(t)
	existing := &domainClient.Client{ID: uuid.New()}
	docs := uuid.NewString()
	clients.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	blobs.EXPECT().Stat(gomock.Any(), docs).Return(nil, domainStorage.ErrFileNotFound)

	_, err := svc.AttachDocuments(context.Background(), caller, existing.ID, &AttachDocumentsRequest{StorageID: docs})
	if !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if existing.DocumentsStorageID != nil {
		t.Fatalf("expected documents to stay unset, got %q", *existing.DocumentsStorageID)
	}
}

func TestAttachDocuments_RejectsMalformedID(t *testing.T) {
	svc, _, _, caller := setup(t)

	_, err := svc.AttachDocuments(context.Background(), caller, uuid.New(), &AttachDocumentsRequest{StorageID: "../../etc/passwd"})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}
