//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package client

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *Filter) ([]*Client, error)
}

type Filter struct {
	BusinessType *BusinessType
	Search       string
}
