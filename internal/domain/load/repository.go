//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package load

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, l *Load) error
	GetByID(ctx context.Context, id uuid.UUID) (*Load, error)
	// Update rewrites every mutable field. Identity fields are left alone.
	Update(ctx context.Context, l *Load) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Load, error)
	SetClientPaidDate(ctx context.Context, id uuid.UUID, date *string) error
	Count(ctx context.Context) (int64, error)
	// MaxLoadCount is the highest sequence number handed out so far.
	MaxLoadCount(ctx context.Context) (int64, error)
}

// Filter narrows List. Nil fields do not filter.
type Filter struct {
	Status          *Status
	Progress        *Progress
	AssignedAgentID *uuid.UUID
}

// Sequencer hands out the next load sequence number.
type Sequencer interface {
	Next(ctx context.Context) (int64, error)
}
