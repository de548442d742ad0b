// Package access resolves the caller of an operation to a profile and the
// capability flags derived from its role.
package access

import (
	"context"
	"errors"

	domainProfile "freight-tms/internal/domain/profile"
	appErrors "freight-tms/pkg/errors"

	"github.com/google/uuid"
)

// Caller is the authenticated identity passed explicitly into every operation.
type Caller struct {
	AccountID uuid.UUID
	Email     string
}

func (c Caller) IsZero() bool {
	return c.AccountID == uuid.Nil
}

// Principal is a caller resolved to its profile.
type Principal struct {
	Profile *domainProfile.Profile

	IsAdmin   bool
	IsManager bool
	IsAgent   bool
	IsSupport bool
}

func (p *Principal) ProfileID() uuid.UUID {
	return p.Profile.ID
}

// IsPrivileged reports admin or manager.
func (p *Principal) IsPrivileged() bool {
	return p.IsAdmin || p.IsManager
}

func NewPrincipal(profile *domainProfile.Profile) *Principal {
	p := &Principal{Profile: profile}
	switch profile.Role {
	case domainProfile.RoleAdmin:
		p.IsAdmin = true
	case domainProfile.RoleManager:
		p.IsManager = true
	case domainProfile.RoleBrokerSalesAgent, domainProfile.RoleCarrierSalesAgent:
		p.IsAgent = true
	case domainProfile.RoleSupport, domainProfile.RoleAccounting:
		p.IsSupport = true
	}
	return p
}

type Resolver struct {
	profileRepo domainProfile.Repository
}

func NewResolver(profileRepo domainProfile.Repository) *Resolver {
	return &Resolver{profileRepo: profileRepo}
}

// Resolve looks the profile up on every call; nothing is cached between requests.
func (r *Resolver) Resolve(ctx context.Context, caller Caller) (*Principal, error) {
	if caller.IsZero() {
		return nil, appErrors.ErrNotAuthenticated
	}

	profile, err := r.profileRepo.GetByAccountID(ctx, caller.AccountID)
	if err != nil {
		if errors.Is(err, domainProfile.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, err
	}

	return NewPrincipal(profile), nil
}
