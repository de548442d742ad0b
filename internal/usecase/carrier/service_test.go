package carrier

import (
	"context"
	"errors"
	"testing"

	domainCarrier "freight-tms/internal/domain/carrier"
	carrierMocks "freight-tms/internal/domain/carrier/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	domainStorage "freight-tms/internal/domain/storage"
	storageMocks "freight-tms/internal/domain/storage/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*Service, *carrierMocks.MockRepository, *storageMocks.MockBlobStore, access.Caller) {
	ctrl := gomock.NewController(t)
	carriers := carrierMocks.NewMockRepository(ctrl)
	blobs := storageMocks.NewMockBlobStore(ctrl)
	profiles := profileMocks.NewMockRepository(ctrl)

	me := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: domainProfile.RoleCarrierSalesAgent}
	profiles.EXPECT().GetByAccountID(gomock.Any(), me.AccountID).Return(me, nil).AnyTimes()

	return NewService(carriers, blobs, access.NewResolver(profiles)), carriers, blobs, access.Caller{AccountID: me.AccountID}
}

func validRequest() *CarrierRequest {
	return &CarrierRequest{
		CompanyName:    "Blue Line Trucking",
		StreetAddress:  "44 Depot Ave",
		City:           "Dallas",
		State:          "TX",
		Zip:            "75201",
		POC:            "Sam",
		POCPhone:       "+1 214 555 0100",
		POCEmail:       "Dispatch@BlueLine.example",
		MCNumber:       "MC123456",
		DOTNumber:      "DOT7654321",
		EINNumber:      "98-7654321",
		PaymentOption:  domainCarrier.PaymentQuickPay,
		PaymentMethod:  domainCarrier.MethodACH,
		SaferScoreLink: "https://safer.fmcsa.dot.gov/query.asp?n=7654321",
		Status:         domainCarrier.StatusApproved,
	}
}

func TestCreateCarrier_RecordsCreator(t *testing.T) {
	svc, carriers, _, caller := setup(t)
	carriers.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domainCarrier.Carrier) error {
			if c.CreatedBy != caller.AccountID {
				t.Errorf("expected creator %s, got %s", caller.AccountID, c.CreatedBy)
			}
			return nil
		})

	c, err := svc.CreateCarrier(context.Background(), caller, validRequest())
	if err != nil {
		t.Fatalf("CreateCarrier: %v", err)
	}
	if c.POCEmail != "dispatch@blueline.example" {
		t.Fatalf("expected normalized email, got %q", c.POCEmail)
	}
}

func TestCreateCarrier_RejectsUnknownPaymentMethod(t *testing.T) {
	svc, _, _, caller := setup(t)
	req := validRequest()
	req.PaymentMethod = "Bitcoin"

	if _, err := svc.CreateCarrier(context.Background(), caller, req); !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateCarrier_KeepsFilesAndCreator(t *testing.T) {
	svc, carriers, _, caller := setup(t)
	w9 := "w9-file"
	creator := uuid.New()
	existing := &domainCarrier.Carrier{ID: uuid.New(), W9FileID: &w9, CreatedBy: creator}
	carriers.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	carriers.EXPECT().Update(gomock.Any(), existing).Return(nil)

	req := validRequest()
	req.Status = domainCarrier.StatusDoNotUse
	c, err := svc.UpdateCarrier(context.Background(), caller, existing.ID, req)
	if err != nil {
		t.Fatalf("UpdateCarrier: %v", err)
	}
	if c.Status != domainCarrier.StatusDoNotUse || c.W9FileID == nil || *c.W9FileID != w9 || c.CreatedBy != creator {
		t.Fatalf("unexpected carrier %+v", c)
	}
}

func TestAttachSupportingDocs(t *testing.T) {
	svc, carriers, blobs, caller := setup(t)
	existing := &domainCarrier.Carrier{ID: uuid.New()}
	docs := uuid.NewString()
	carriers.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	blobs.EXPECT().Stat(gomock.Any(), docs).Return(&domainStorage.FileInfo{ID: docs}, nil)
	carriers.EXPECT().Update(gomock.Any(), existing).Return(nil)

	c, err := svc.AttachSupportingDocs(context.Background(), caller, existing.ID, &AttachFileRequest{StorageID: docs})
	if err != nil {
		t.Fatalf("AttachSupportingDocs: %v", err)
	}
	if c.SupportingDocsFileID == nil || *c.SupportingDocsFileID != docs {
		t.Fatalf("expected docs to be attached, got %+v", c.SupportingDocsFileID)
	}
}

func TestAttachW9_UnknownFile(t *testing.T) {
	svc, carriers, blobs, caller := setup(t)
	existing := &domainCarrier.Carrier{ID: uuid.New()}
	w9 := uuid.NewString()
	carriers.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	blobs.EXPECT().Stat(gomock.Any(), w9).Return(nil, domainStorage.ErrFileNotFound)

	_, err := svc.AttachW9(context.Background(), caller, existing.ID, &AttachFileRequest{StorageID: w9})
	if !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if existing.W9FileID != nil {
		t.Fatalf("expected W9 to stay unset, got %q", *existing.W9FileID)
	}
}

func TestAttachW9_RejectsMalformedID(t *testing.T) {
	svc, _, _, caller := setup(t)

	_, err := svc.AttachW9(context.Background(), caller, uuid.New(), &AttachFileRequest{StorageID: "../../etc/passwd"})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCarrier_UnknownW9(t *testing.T) {
	svc, _, blobs, caller := setup(t)
	req := validRequest()
	w9 := uuid.NewString()
	req.W9FileID = &w9
	blobs.EXPECT().Stat(gomock.Any(), w9).Return(nil, domainStorage.ErrFileNotFound)

	if _, err := svc.CreateCarrier(context.Background(), caller, req); !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListCarriers_FiltersByStatus(t *testing.T) {
	svc, carriers, _, caller := setup(t)
	status := domainCarrier.StatusApproved
	carriers.EXPECT().List(gomock.Any(), &status).Return([]*domainCarrier.Carrier{{CompanyName: "A"}, {CompanyName: "B"}}, nil)

	got, err := svc.ListCarriers(context.Background(), caller, &ListCarriersRequest{Status: &status})
	if err != nil {
		t.Fatalf("ListCarriers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 carriers, got %d", len(got))
	}
}
