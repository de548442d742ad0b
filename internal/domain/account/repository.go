//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

package account

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*Account, error)
	UpdatePassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error
	// ListWithoutProfile returns accounts no profile has been linked to yet.
	ListWithoutProfile(ctx context.Context) ([]*Account, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	RevokeAll(ctx context.Context, accountID uuid.UUID) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}
