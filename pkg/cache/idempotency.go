package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "requisition:idem"

// pendingMarker is stored while a submission is in flight.
const pendingMarker = "pending"

// IdempotencyStore reserves client-supplied submission keys so a retried
// request cannot create a second requisition header.
// Key format: "requisition:idem:{key}"
type IdempotencyStore struct {
	client *RedisClient
	ttl    time.Duration
}

// NewIdempotencyStore creates a store whose reservations expire after ttl.
func NewIdempotencyStore(r *RedisClient, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: r, ttl: ttl}
}

// Reserve claims key. It returns false when the key is already held.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.Client().SetNX(ctx, s.key(key), pendingMarker, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency reserve: %w", err)
	}
	return ok, nil
}

// Complete records the header id created under key, keeping the remaining TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, headerID int64) error {
	err := s.client.Client().SetArgs(ctx, s.key(key), headerID, redis.SetArgs{KeepTTL: true, Mode: "XX"}).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release frees key so the client can retry.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Client().Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(key string) string {
	return idempotencyKeyPrefix + ":" + key
}
