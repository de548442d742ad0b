package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the login identity. Application data hangs off the linked profile.
type Account struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHashed string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RefreshToken struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	RevokedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
