package ratelimit

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
)

// Store counts hits per key.
type Store interface {
	// Allow records one hit for key and reports whether it fits into limit.
	Allow(ctx context.Context, key string, limit Limit) (Result, error)

	// Close releases resources held by the store.
	Close() error
}

// Cleaner is implemented by stores that keep per-key state in process.
type Cleaner interface {
	// Cleanup drops keys idle for longer than the store's TTL and returns
	// how many were removed.
	Cleanup() int
}

// NewStore returns a Redis store when cfg.RedisAddr is set and an in-memory
// store otherwise.
func NewStore(ctx context.Context, cfg config.RateLimit, workers config.Workers, log *logger.Logger) (Store, error) {
	if cfg.RedisAddr == "" {
		log.Info().Str("func", "ratelimit.NewStore").Msg("using in-memory rate limit store")
		return NewMemoryStore(workers.LimiterIdleTTL), nil
	}

	store, err := NewRedisStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	log.Info().Str("func", "ratelimit.NewStore").Str("addr", cfg.RedisAddr).Msg("using redis rate limit store")

	return store, nil
}
