//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package carrier

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Carrier) error
	GetByID(ctx context.Context, id uuid.UUID) (*Carrier, error)
	Update(ctx context.Context, c *Carrier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *Status) ([]*Carrier, error)
}
