package account

import (
	"context"
	"freight-tms/internal/logger"
	"time"

	"go.uber.org/zap"
)

// Revoked and expired refresh tokens are kept this long for audit before removal.
const tokenRetention = 24 * time.Hour

// StartTokenCleanupJob purges stale refresh tokens once immediately and then
// every interval. It returns when ctx is cancelled.
func (s *Service) StartTokenCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Refresh token purge scheduled",
		zap.Duration("interval", interval),
		zap.Duration("retention", tokenRetention),
	)

	for {
		s.PurgeStaleTokens(ctx)

		select {
		case <-ctx.Done():
			logger.Info("Refresh token purge stopped")
			return
		case <-ticker.C:
		}
	}
}

// PurgeStaleTokens runs one purge pass and reports how many rows went.
func (s *Service) PurgeStaleTokens(ctx context.Context) int64 {
	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx, tokenRetention)
	if err != nil {
		logger.Error("Failed to purge refresh tokens", zap.Error(err))
		return 0
	}

	if deleted > 0 {
		logger.Info("Refresh tokens purged",
			zap.Int64("deleted", deleted),
			zap.String("event", "refresh_tokens_purged"),
		)
	}
	return deleted
}
