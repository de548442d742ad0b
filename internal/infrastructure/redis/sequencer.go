package redis

import (
	"context"
	"fmt"
	domainLoad "freight-tms/internal/domain/load"

	"github.com/redis/go-redis/v9"
)

const loadSequenceKey = "tms:load_seq"

// Sequencer hands out load numbers with INCR. The counter is seeded from the
// highest number already stored so existing loads are never renumbered.
type Sequencer struct {
	rdb  redis.Cmdable
	seed func(ctx context.Context) (int64, error)
}

func NewSequencer(rdb redis.Cmdable, loadRepo domainLoad.Repository) *Sequencer {
	return &Sequencer{rdb: rdb, seed: loadRepo.MaxLoadCount}
}

func (s *Sequencer) Next(ctx context.Context) (int64, error) {
	exists, err := s.rdb.Exists(ctx, loadSequenceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("load sequence: %w", err)
	}
	if exists == 0 {
		current, err := s.seed(ctx)
		if err != nil {
			return 0, err
		}
		// SETNX: a concurrent seeder that got there first wins.
		if err := s.rdb.SetNX(ctx, loadSequenceKey, current, 0).Err(); err != nil {
			return 0, fmt.Errorf("seed load sequence: %w", err)
		}
	}

	n, err := s.rdb.Incr(ctx, loadSequenceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("load sequence: %w", err)
	}
	return n, nil
}
