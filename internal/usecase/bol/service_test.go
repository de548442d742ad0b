package bol

import (
	"context"
	"errors"
	"testing"
	"time"

	domainBOL "freight-tms/internal/domain/bol"
	bolMocks "freight-tms/internal/domain/bol/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *bolMocks.MockRepository, access.Caller) {
	ctrl := gomock.NewController(t)
	bols := bolMocks.NewMockRepository(ctrl)
	profiles := profileMocks.NewMockRepository(ctrl)

	me := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: domainProfile.RoleSupport}
	profiles.EXPECT().GetByAccountID(gomock.Any(), me.AccountID).Return(me, nil).AnyTimes()

	svc := NewService(bols, access.NewResolver(profiles))
	svc.now = func() time.Time { return fixedNow }
	return svc, bols, access.Caller{AccountID: me.AccountID}
}

func party(name string) PartyRequest {
	return PartyRequest{CompanyName: name, Address: "1 Yard Rd", City: "Reno", State: "NV", Zip: "89501"}
}

func validRequest() *BOLRequest {
	return &BOLRequest{
		LoadID:          "L000042",
		Date:            "2024-03-14",
		EquipmentType:   "Reefer",
		Weight:          "40000 lb",
		EquipmentLength: "53 ft",
		Commodity:       "Produce",
		Distance:        "850 mi",
		CarrierName:     "Blue Line Trucking",
		CarrierAddress:  "44 Depot Ave",
		CarrierCity:     "Dallas",
		CarrierState:    "TX",
		CarrierZip:      "75201",
		DOTNumber:       "7654321",
		MCNumber:        "123456",
		DriverName:      "Pat",
		Pickup:          party("Farm Co"),
		Delivery:        party("Market Co"),
		PayItems: []PayItemRequest{
			{Description: "Line haul", Quantity: 1, Rate: 2150},
			{Description: "Detention", Quantity: 2.5, Rate: 75.333},
		},
		SignerName: "Pat",
		Signature:  "data:image/png;base64,AAAA",
		SignDate:   "2024-03-14",
	}
}

func TestCreateBOL_ComputesTotals(t *testing.T) {
	svc, bols, caller := setup(t)
	bols.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	b, err := svc.CreateBOL(context.Background(), caller, validRequest())
	if err != nil {
		t.Fatalf("CreateBOL: %v", err)
	}
	if b.PayItems[0].Amount != 2150 || b.PayItems[1].Amount != 188.33 {
		t.Fatalf("unexpected amounts %+v", b.PayItems)
	}
	if b.GrandTotal != 2338.33 {
		t.Fatalf("expected grand total 2338.33, got %v", b.GrandTotal)
	}
	if b.CreatedBy != caller.AccountID || !b.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected creation stamp %s %s", b.CreatedBy, b.CreatedAt)
	}
}

func TestUpdateBOL_IgnoresClientAmounts(t *testing.T) {
	svc, bols, caller := setup(t)
	existing := &domainBOL.BillOfLading{
		ID:         uuid.New(),
		CreatedBy:  uuid.New(),
		PayItems:   []domainBOL.PayItem{{Description: "old", Quantity: 1, Rate: 1, Amount: 999}},
		GrandTotal: 999,
	}
	bols.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	bols.EXPECT().Update(gomock.Any(), existing).Return(nil)

	req := validRequest()
	req.PayItems = []PayItemRequest{{Description: "Line haul", Quantity: 3, Rate: 10}}
	b, err := svc.UpdateBOL(context.Background(), caller, existing.ID, req)
	if err != nil {
		t.Fatalf("UpdateBOL: %v", err)
	}
	if b.GrandTotal != 30 || len(b.PayItems) != 1 {
		t.Fatalf("unexpected totals %+v", b)
	}
	if b.CreatedBy == caller.AccountID {
		t.Fatal("update must not change the creator")
	}
}

func TestCreateBOL_RejectsBadDate(t *testing.T) {
	svc, _, caller := setup(t)
	req := validRequest()
	req.Date = "14/03/2024"

	if _, err := svc.CreateBOL(context.Background(), caller, req); !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetBOL_NotFound(t *testing.T) {
	svc, bols, caller := setup(t)
	id := uuid.New()
	bols.EXPECT().GetByID(gomock.Any(), id).Return(nil, domainBOL.ErrBOLNotFound)

	if _, err := svc.GetBOL(context.Background(), caller, id); !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
