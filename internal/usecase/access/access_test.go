package access

import (
	"context"
	"errors"
	"testing"

	domainProfile "freight-tms/internal/domain/profile"
	"freight-tms/internal/domain/profile/mocks"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestResolve_ZeroCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := NewResolver(mocks.NewMockRepository(ctrl))

	_, err := r.Resolve(context.Background(), Caller{})
	if !errors.Is(err, appErrors.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestResolve_NoProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	accountID := uuid.New()
	repo.EXPECT().GetByAccountID(gomock.Any(), accountID).Return(nil, domainProfile.ErrProfileNotFound)

	_, err := NewResolver(repo).Resolve(context.Background(), Caller{AccountID: accountID})
	if !errors.Is(err, appErrors.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestNewPrincipal_Flags(t *testing.T) {
	tests := []struct {
		role                                  domainProfile.Role
		admin, manager, agent, support, privd bool
	}{
		{domainProfile.RoleAdmin, true, false, false, false, true},
		{domainProfile.RoleManager, false, true, false, false, true},
		{domainProfile.RoleBrokerSalesAgent, false, false, true, false, false},
		{domainProfile.RoleCarrierSalesAgent, false, false, true, false, false},
		{domainProfile.RoleSupport, false, false, false, true, false},
		{domainProfile.RoleAccounting, false, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			p := NewPrincipal(&domainProfile.Profile{ID: uuid.New(), Role: tt.role})
			if p.IsAdmin != tt.admin || p.IsManager != tt.manager || p.IsAgent != tt.agent || p.IsSupport != tt.support {
				t.Fatalf("unexpected flags for %s: %+v", tt.role, p)
			}
			if p.IsPrivileged() != tt.privd {
				t.Fatalf("IsPrivileged for %s = %v", tt.role, p.IsPrivileged())
			}
		})
	}
}
