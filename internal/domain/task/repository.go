//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package task

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, completionTime *time.Time) error
	List(ctx context.Context, filter *Filter) ([]*Task, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// Filter narrows List. Nil fields do not filter.
type Filter struct {
	AssigneeID *uuid.UUID
	AssignerID *uuid.UUID
	Status     *Status
}
