package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"freight-tms/internal/domain/storage"
	"time"

	"github.com/redis/go-redis/v9"
)

const ticketKeyPrefix = "tms:upload_ticket:"

// TicketStore keeps upload tickets as expiring keys; the value is the issuer.
type TicketStore struct {
	rdb redis.Cmdable
	now func() time.Time
}

func NewTicketStore(rdb redis.Cmdable) *TicketStore {
	return &TicketStore{rdb: rdb, now: time.Now}
}

func (s *TicketStore) Issue(ctx context.Context, issuedBy string, ttl time.Duration) (*storage.Ticket, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate upload ticket: %w", err)
	}
	token := hex.EncodeToString(b)

	if err := s.rdb.Set(ctx, ticketKeyPrefix+token, issuedBy, ttl).Err(); err != nil {
		return nil, fmt.Errorf("store upload ticket: %w", err)
	}

	return &storage.Ticket{
		Token:     token,
		IssuedBy:  issuedBy,
		ExpiresAt: s.now().Add(ttl).UTC(),
	}, nil
}

// Consume reads and deletes in one GETDEL so a ticket is never redeemed twice.
func (s *TicketStore) Consume(ctx context.Context, token string) (*storage.Ticket, error) {
	if token == "" {
		return nil, storage.ErrTicketNotFound
	}

	issuedBy, err := s.rdb.GetDel(ctx, ticketKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("consume upload ticket: %w", err)
	}

	return &storage.Ticket{Token: token, IssuedBy: issuedBy}, nil
}
