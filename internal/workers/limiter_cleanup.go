package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/internal/ratelimit"
)

// LimiterCleanupWorker evicts idle in-memory rate-limit buckets.
type LimiterCleanupWorker struct {
	cleaner  ratelimit.Cleaner
	interval time.Duration
	logger   *logger.Logger
}

// NewLimiterCleanupWorker returns nil when store keeps no in-process state
// or interval is not positive.
func NewLimiterCleanupWorker(store ratelimit.Store, interval time.Duration, logger *logger.Logger) Worker {
	cleaner, ok := store.(ratelimit.Cleaner)
	if !ok || interval <= 0 {
		return nil
	}

	return &LimiterCleanupWorker{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
	}
}

func (w *LimiterCleanupWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := w.cleaner.Cleanup(); removed > 0 {
				w.logger.Debug().Int("removed", removed).Msg("evicted idle rate limit buckets")
			}
		}
	}
}
