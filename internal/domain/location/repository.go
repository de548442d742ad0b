//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package location

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	Update(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List orders by building name; city narrows when non-empty.
	List(ctx context.Context, city string) ([]*Location, error)
}
