package profile

import (
	"context"
	"errors"
	"testing"

	domainAccount "freight-tms/internal/domain/account"
	accountMocks "freight-tms/internal/domain/account/mocks"
	domainProfile "freight-tms/internal/domain/profile"
	profileMocks "freight-tms/internal/domain/profile/mocks"
	domainStorage "freight-tms/internal/domain/storage"
	storageMocks "freight-tms/internal/domain/storage/mocks"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Service, *profileMocks.MockRepository, *accountMocks.MockRepository, *storageMocks.MockBlobStore) {
	ctrl := gomock.NewController(t)
	profiles := profileMocks.NewMockRepository(ctrl)
	accounts := accountMocks.NewMockRepository(ctrl)
	blobs := storageMocks.NewMockBlobStore(ctrl)
	return NewService(profiles, accounts, access.NewResolver(profiles), blobs, "https://tms.example.com/"), profiles, accounts, blobs
}

func register(profiles *profileMocks.MockRepository, role domainProfile.Role) (access.Caller, *domainProfile.Profile) {
	p := &domainProfile.Profile{ID: uuid.New(), AccountID: uuid.New(), Role: role, Status: domainProfile.StatusActive}
	profiles.EXPECT().GetByAccountID(gomock.Any(), p.AccountID).Return(p, nil).AnyTimes()
	return access.Caller{AccountID: p.AccountID}, p
}

func TestInitializeFirstUser_Bootstraps(t *testing.T) {
	svc, profiles, accounts, _ := newService(t)
	accountID := uuid.New()

	profiles.EXPECT().GetByAccountID(gomock.Any(), accountID).Return(nil, domainProfile.ErrProfileNotFound)
	profiles.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	accounts.EXPECT().GetByID(gomock.Any(), accountID).Return(&domainAccount.Account{ID: accountID, Email: "owner@example.com"}, nil)
	profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	p, err := svc.InitializeFirstUser(context.Background(), access.Caller{AccountID: accountID})
	if err != nil {
		t.Fatalf("InitializeFirstUser: %v", err)
	}
	if p.Role != domainProfile.RoleAdmin || p.Status != domainProfile.StatusActive {
		t.Fatalf("unexpected role/status %s/%s", p.Role, p.Status)
	}
	if p.Name != "New User" || p.LoadID != "L000001" {
		t.Fatalf("unexpected defaults %q %q", p.Name, p.LoadID)
	}
}

func TestInitializeFirstUser_ReturnsExisting(t *testing.T) {
	svc, profiles, _, _ := newService(t)
	caller, me := register(profiles, domainProfile.RoleSupport)

	p, err := svc.InitializeFirstUser(context.Background(), caller)
	if err != nil || p.ID != me.ID {
		t.Fatalf("expected existing profile, got %v %v", p, err)
	}
}

func TestInitializeFirstUser_RefusedWhenProfilesExist(t *testing.T) {
	svc, profiles, _, _ := newService(t)
	accountID := uuid.New()

	profiles.EXPECT().GetByAccountID(gomock.Any(), accountID).Return(nil, domainProfile.ErrProfileNotFound)
	profiles.EXPECT().Count(gomock.Any()).Return(int64(3), nil)

	_, err := svc.InitializeFirstUser(context.Background(), access.Caller{AccountID: accountID})
	if !errors.Is(err, appErrors.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestCreateProfile_GeneratesLoadID(t *testing.T) {
	svc, profiles, accounts, _ := newService(t)
	caller, _ := register(profiles, domainProfile.RoleAdmin)
	target := &domainAccount.Account{ID: uuid.New(), Email: "agent@example.com"}

	accounts.EXPECT().GetByEmail(gomock.Any(), "agent@example.com").Return(target, nil)
	profiles.EXPECT().Count(gomock.Any()).Return(int64(4), nil)
	profiles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domainProfile.Profile) error {
			if p.AccountID != target.ID {
				t.Fatalf("profile not linked to account")
			}
			return nil
		})

	p, err := svc.CreateProfile(context.Background(), caller, &CreateProfileRequest{
		Name:  "Agent Smith",
		Email: "agent@example.com",
		Role:  domainProfile.RoleBrokerSalesAgent,
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if p.LoadID != "L000005" {
		t.Fatalf("expected L000005, got %s", p.LoadID)
	}
	if p.Status != domainProfile.StatusActive {
		t.Fatalf("expected default active status, got %s", p.Status)
	}
}

func TestCreateProfile_NonAdmin(t *testing.T) {
	svc, profiles, _, _ := newService(t)
	caller, _ := register(profiles, domainProfile.RoleManager)

	_, err := svc.CreateProfile(context.Background(), caller, &CreateProfileRequest{
		Name:  "X",
		Email: "x@example.com",
		Role:  domainProfile.RoleSupport,
	})
	if !errors.Is(err, appErrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUpdateProfile_Patch(t *testing.T) {
	svc, profiles, _, _ := newService(t)
	caller, _ := register(profiles, domainProfile.RoleAdmin)
	target := &domainProfile.Profile{ID: uuid.New(), Name: "Old", Email: "old@example.com", Role: domainProfile.RoleSupport, Status: domainProfile.StatusActive, LoadID: "L000009"}

	profiles.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
	profiles.EXPECT().Update(gomock.Any(), target).Return(nil)

	inactive := domainProfile.StatusInactive
	p, err := svc.UpdateProfile(context.Background(), caller, target.ID, &UpdateProfileRequest{Status: &inactive})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if p.Status != domainProfile.StatusInactive || p.Name != "Old" || p.LoadID != "L000009" {
		t.Fatalf("patch applied incorrectly: %+v", p)
	}
}

func TestSetProfileImage_Owner(t *testing.T) {
	svc, profiles, _, blobs := newService(t)
	caller, me := register(profiles, domainProfile.RoleCarrierSalesAgent)
	image := uuid.NewString()

	profiles.EXPECT().GetByID(gomock.Any(), me.ID).Return(me, nil)
	blobs.EXPECT().Stat(gomock.Any(), image).Return(&domainStorage.FileInfo{ID: image, ContentType: "image/png"}, nil)
	profiles.EXPECT().Update(gomock.Any(), me).Return(nil)

	p, err := svc.SetProfileImage(context.Background(), caller, me.ID, &SetImageRequest{StorageID: image})
	if err != nil {
		t.Fatalf("SetProfileImage: %v", err)
	}
	if p.ImageURL == nil || *p.ImageURL != "https://tms.example.com/api/v1/files/"+image {
		t.Fatalf("unexpected url %v", p.ImageURL)
	}
}

func TestSetProfileImage_OtherProfile(t *testing.T) {
	svc, profiles, _, _ := newService(t)
	caller, _ := register(profiles, domainProfile.RoleCarrierSalesAgent)

	_, err := svc.SetProfileImage(context.Background(), caller, uuid.New(), &SetImageRequest{StorageID: uuid.NewString()})
	if !errors.Is(err, appErrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestSetProfileImage_RejectsMalformedID(t *testing.T) {
	svc, profiles, _, _ := newService(t)
	caller, me := register(profiles, domainProfile.RoleCarrierSalesAgent)

	_, err := svc.SetProfileImage(context.Background(), caller, me.ID, &SetImageRequest{StorageID: "../../etc/passwd"})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if me.ImageURL != nil {
		t.Fatalf("expected image to stay unset, got %q", *me.ImageURL)
	}
}

func TestSetProfileImage_UnknownFile(t *testing.T) {
	svc, profiles, _, blobs := newService(t)
	caller, me := register(profiles, domainProfile.RoleCarrierSalesAgent)
	image := uuid.NewString()

	profiles.EXPECT().GetByID(gomock.Any(), me.ID).Return(me, nil)
	blobs.EXPECT().Stat(gomock.Any(), image).Return(nil, domainStorage.ErrFileNotFound)

	_, err := svc.SetProfileImage(context.Background(), caller, me.ID, &SetImageRequest{StorageID: image})
	if !errors.Is(err, appErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if me.ImageStorageID != nil {
		t.Fatalf("expected image to stay unset, got %q", *me.ImageStorageID)
	}
}

func TestAvailableAccounts(t *testing.T) {
	svc, profiles, accounts, _ := newService(t)
	caller, _ := register(profiles, domainProfile.RoleAdmin)

	accounts.EXPECT().ListWithoutProfile(gomock.Any()).Return([]*domainAccount.Account{
		{Email: "a@example.com"}, {Email: ""}, {Email: "b@example.com"},
	}, nil)

	emails, err := svc.AvailableAccounts(context.Background(), caller)
	if err != nil {
		t.Fatalf("AvailableAccounts: %v", err)
	}
	if len(emails) != 2 || emails[0] != "a@example.com" || emails[1] != "b@example.com" {
		t.Fatalf("unexpected emails %v", emails)
	}
}
