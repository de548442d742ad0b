package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"freight-tms/internal/domain/storage"
)

func TestTicketStore_ConsumeOnce(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewTicketStore(rdb)

	ticket, err := store.Issue(context.Background(), "account-1", time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(ticket.Token) != 48 {
		t.Fatalf("expected 48 hex chars, got %q", ticket.Token)
	}

	got, err := store.Consume(context.Background(), ticket.Token)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if got.IssuedBy != "account-1" {
		t.Fatalf("expected issuer account-1, got %q", got.IssuedBy)
	}

	if _, err := store.Consume(context.Background(), ticket.Token); !errors.Is(err, storage.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound on reuse, got %v", err)
	}
}

func TestTicketStore_Expires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewTicketStore(rdb)

	ticket, err := store.Issue(context.Background(), "account-1", time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := store.Consume(context.Background(), ticket.Token); !errors.Is(err, storage.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound after expiry, got %v", err)
	}
}

func TestTicketStore_EmptyToken(t *testing.T) {
	_, rdb := newTestRedis(t)

	if _, err := NewTicketStore(rdb).Consume(context.Background(), ""); !errors.Is(err, storage.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}
