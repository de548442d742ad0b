package redis

import (
	"context"
	"errors"
	"testing"

	domainLoad "freight-tms/internal/domain/load"
	loadMocks "freight-tms/internal/domain/load/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestSequencer_EmptyTableStartsAtOne(t *testing.T) {
	_, rdb := newTestRedis(t)
	loads := loadMocks.NewMockRepository(gomock.NewController(t))
	loads.EXPECT().MaxLoadCount(gomock.Any()).Return(int64(0), nil).Times(1)

	seq := NewSequencer(rdb, loads)
	for _, want := range []string{"L000001", "L000002"} {
		n, err := seq.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got := domainLoad.FormatLoadID(n); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestSequencer_SeedsFromHighestStoredNumber(t *testing.T) {
	mr, rdb := newTestRedis(t)
	loads := loadMocks.NewMockRepository(gomock.NewController(t))
	loads.EXPECT().MaxLoadCount(gomock.Any()).Return(int64(41), nil).Times(1)

	seq := NewSequencer(rdb, loads)
	n, err := seq.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}

	n, err = seq.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if n != 43 {
		t.Fatalf("expected 43, got %d", n)
	}

	if v, _ := mr.Get(loadSequenceKey); v != "43" {
		t.Fatalf("expected stored counter 43, got %q", v)
	}
}

func TestSequencer_ExistingCounterWins(t *testing.T) {
	mr, rdb := newTestRedis(t)
	if err := mr.Set(loadSequenceKey, "100"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// The counter is already there, so the table is never consulted.
	loads := loadMocks.NewMockRepository(gomock.NewController(t))

	n, err := NewSequencer(rdb, loads).Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if n != 101 {
		t.Fatalf("expected 101, got %d", n)
	}
}

func TestSequencer_SeedError(t *testing.T) {
	_, rdb := newTestRedis(t)
	loads := loadMocks.NewMockRepository(gomock.NewController(t))
	seedErr := errors.New("db down")
	loads.EXPECT().MaxLoadCount(gomock.Any()).Return(int64(0), seedErr)

	if _, err := NewSequencer(rdb, loads).Next(context.Background()); !errors.Is(err, seedErr) {
		t.Fatalf("expected seed error, got %v", err)
	}
}
