//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package bol

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, b *BillOfLading) error
	GetByID(ctx context.Context, id uuid.UUID) (*BillOfLading, error)
	Update(ctx context.Context, b *BillOfLading) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns newest first.
	List(ctx context.Context) ([]*BillOfLading, error)
}
