package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-finance-advisor/internal/config"
	"github.com/redis/go-redis/v9"
)

// counter is the part of Redis the fixed-window store needs.
type counter interface {
	// IncrWithExpire increments key and sets its TTL in one round trip.
	IncrWithExpire(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// goRedisCounter implements counter with go-redis.
type goRedisCounter struct {
	client *redis.Client
}

var _ counter = (*goRedisCounter)(nil)

func (c *goRedisCounter) IncrWithExpire(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.PExpire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}

func (c *goRedisCounter) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *goRedisCounter) Close() error {
	return c.client.Close()
}

// RedisStore counts hits in fixed windows aligned to the limit period, so
// every instance sharing the Redis database sees the same counters.
type RedisStore struct {
	counter counter
	prefix  string
	now     func() time.Time
}

// NewRedisStore connects to cfg.RedisAddr and checks the connection.
func NewRedisStore(ctx context.Context, cfg config.RateLimit) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	c := &goRedisCounter{client: client}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return newRedisStore(c, cfg.KeyPrefix), nil
}

func newRedisStore(c counter, prefix string) *RedisStore {
	return &RedisStore{counter: c, prefix: prefix, now: time.Now}
}

// Allow implements [Store].
func (s *RedisStore) Allow(ctx context.Context, key string, limit Limit) (Result, error) {
	now := s.now()
	window := now.Truncate(limit.Period)
	windowKey := s.prefix + key + ":" + strconv.FormatInt(window.Unix(), 10)

	count, err := s.counter.IncrWithExpire(ctx, windowKey, limit.Period)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	res := Result{
		Allowed:   count <= int64(limit.Requests),
		Limit:     limit.Requests,
		Remaining: max(0, limit.Requests-int(count)),
	}
	if !res.Allowed {
		res.RetryAfter = window.Add(limit.Period).Sub(now)
	}

	return res, nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.counter.Ping(ctx)
}

// Close implements [Store].
func (s *RedisStore) Close() error {
	return s.counter.Close()
}
