//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package notification

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// Broadcaster pushes a stored notification to live subscribers.
type Broadcaster interface {
	Broadcast(ctx context.Context, n *Notification) error
}
