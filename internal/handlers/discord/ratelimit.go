package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitConfig caps how often one user may run /layout
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	Store       RateLimitStore // Optional (in-memory if nil)
}

// RateLimitStore counts requests per key within a window
type RateLimitStore interface {
	// Increment bumps the counter for key and returns the new count
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
}

type rateLimiter struct {
	max    int
	window time.Duration
	store  RateLimitStore
}

func newRateLimiter(cfg *RateLimitConfig) *rateLimiter {
	if cfg == nil || cfg.MaxRequests <= 0 || cfg.Window <= 0 {
		return nil
	}

	store := cfg.Store
	if store == nil {
		store = NewMemoryRateLimitStore()
	}

	return &rateLimiter{
		max:    cfg.MaxRequests,
		window: cfg.Window,
		store:  store,
	}
}

// allow reports whether userID is under the limit. Store errors never block a request.
func (r *rateLimiter) allow(ctx context.Context, userID string) bool {
	if r == nil || userID == "" {
		return true
	}

	count, err := r.store.Increment(ctx, fmt.Sprintf("ratelimit:%s:%s", CommandName, userID), r.window)
	if err != nil {
		return true
	}
	return count <= r.max
}

// MemoryRateLimitStore is an in-memory rate limit store
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count   int
	resetAt time.Time
}

func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	// Expired buckets are dropped on write so the map can't grow without bound
	for k, b := range s.buckets {
		if now.After(b.resetAt) {
			delete(s.buckets, k)
		}
	}

	b, exists := s.buckets[key]
	if !exists {
		b = &bucket{resetAt: now.Add(window)}
		s.buckets[key] = b
	}
	b.count++

	return b.count, nil
}

// RedisRateLimitStore shares counters between bot instances
type RedisRateLimitStore struct {
	client redis.UniversalClient
}

func NewRedisRateLimitStore(client redis.UniversalClient) *RedisRateLimitStore {
	if client == nil {
		panic("redis client is required")
	}
	return &RedisRateLimitStore{client: client}
}

func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", key, err)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set expiry on %s: %w", key, err)
		}
	}

	return int(count), nil
}
