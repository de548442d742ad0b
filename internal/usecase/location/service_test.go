package location

import (
	"context"
	"errors"
	"testing"

	domainLocation "freight-tms/internal/domain/location"
	locationMocks "freight-tms/internal/domain/location/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*Service, *locationMocks.MockRepository, *profileMocks.MockRepository) {
	ctrl := gomock.NewController(t)
	locations := locationMocks.NewMockRepository(ctrl)
	profiles := profileMocks.NewMockRepository(ctrl)
	return NewService(locations, access.NewResolver(profiles)), locations, profiles
}

func asAgent(profiles *profileMocks.MockRepository) access.Caller {
	me := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: domainProfile.RoleBrokerSalesAgent}
	profiles.EXPECT().GetByAccountID(gomock.Any(), me.AccountID).Return(me, nil).AnyTimes()
	return access.Caller{AccountID: me.AccountID}
}

func TestCreateLocation(t *testing.T) {
	svc, locations, profiles := setup(t)
	caller := asAgent(profiles)
	locations.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *domainLocation.Location) error {
			l.ID = uuid.New()
			return nil
		})

	l, err := svc.CreateLocation(context.Background(), caller, &CreateLocationRequest{
		BuildingName:     "Dock 4",
		StreetAddress:    "9 Port Rd",
		City:             "Houston",
		State:            "TX",
		Zip:              "77001",
		Country:          "USA",
		Phone:            "(713) 555-0199",
		HoursOfOperation: "Mon-Fri 7-15",
	})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if l.ID == uuid.Nil || l.Phone != "(713) 555-0199" {
		t.Fatalf("unexpected location %+v", l)
	}
}

func TestListLocations_TrimsCity(t *testing.T) {
	svc, locations, profiles := setup(t)
	caller := asAgent(profiles)
	locations.EXPECT().List(gomock.Any(), "Houston").Return([]*domainLocation.Location{{BuildingName: "Dock 4"}}, nil)

	got, err := svc.ListLocations(context.Background(), caller, "  Houston ")
	if err != nil {
		t.Fatalf("ListLocations: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one location, got %d", len(got))
	}
}

func TestUpdateLocation(t *testing.T) {
	svc, locations, profiles := setup(t)
	caller := asAgent(profiles)
	existing := &domainLocation.Location{ID: uuid.New(), BuildingName: "Dock 4", City: "Houston"}
	locations.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)
	locations.EXPECT().Update(gomock.Any(), existing).Return(nil)

	hours := "24/7"
	l, err := svc.UpdateLocation(context.Background(), caller, existing.ID, &UpdateLocationRequest{HoursOfOperation: &hours})
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if l.HoursOfOperation != "24/7" || l.City != "Houston" {
		t.Fatalf("unexpected location %+v", l)
	}
}

func TestLocation_RequiresProfile(t *testing.T) {
	svc, _, profiles := setup(t)
	accountID := uuid.New()
	profiles.EXPECT().GetByAccountID(gomock.Any(), accountID).Return(nil, domainProfile.ErrProfileNotFound)

	_, err := svc.ListLocations(context.Background(), access.Caller{AccountID: accountID}, "")
	if !errors.Is(err, appErrors.ErrProfileNotFound) {
		t.Fatalf("expected profile not found, got %v", err)
	}
}

func TestLocation_RequiresAuthentication(t *testing.T) {
	svc, _, _ := setup(t)

	err := svc.DeleteLocation(context.Background(), access.Caller{}, uuid.New())
	if !errors.Is(err, appErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
}
