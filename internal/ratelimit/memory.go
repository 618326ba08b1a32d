package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key. Buckets refill continuously at
// Requests/Period with a burst of Requests.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	idleTTL time.Duration
	now     func() time.Time
}

// NewMemoryStore returns an empty store. Buckets untouched for idleTTL are
// removed by Cleanup.
func NewMemoryStore(idleTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Allow implements [Store].
func (s *MemoryStore) Allow(_ context.Context, key string, limit Limit) (Result, error) {
	now := s.now()

	s.mu.Lock()
	b, ok := s.buckets[key]
	if !ok {
		every := limit.Period / time.Duration(limit.Requests)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), limit.Requests)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	s.mu.Unlock()

	res := Result{Limit: limit.Requests}
	if b.limiter.AllowN(now, 1) {
		res.Allowed = true
	} else {
		r := b.limiter.ReserveN(now, 1)
		res.RetryAfter = r.DelayFrom(now)
		r.CancelAt(now)
	}
	res.Remaining = int(math.Max(0, math.Floor(b.limiter.TokensAt(now))))

	return res, nil
}

// Cleanup implements [Cleaner].
func (s *MemoryStore) Cleanup() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, b := range s.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(s.buckets, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// Close implements [Store].
func (s *MemoryStore) Close() error {
	return nil
}
