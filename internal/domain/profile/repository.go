//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package profile

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, profileID uuid.UUID) (*Profile, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, profileID uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Profile, error)
	Count(ctx context.Context) (int64, error)
}

// Filter narrows List. Search matches name, email or loadId, case-insensitively.
type Filter struct {
	Search string
	Role   *Role
	Status *Status
}
