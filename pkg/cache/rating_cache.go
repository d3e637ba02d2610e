package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	ratingCacheKeyPrefix = "rating_summary"
	ratingGenKeyPrefix   = "rating_summary_gen"
	generationTTL        = 24 * time.Hour
)

// ErrStaleSummary means the supplier's summary was invalidated after the
// generation passed to SetIfCurrent was read.
var ErrStaleSummary = errors.New("cache: rating summary invalidated since read")

// CachedRating is one entry of a summary's most-recent list.
type CachedRating struct {
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	RatedBy   int64     `json:"rated_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CachedRatingSummary is the read model for a supplier's ratings.
// Stored as a Redis hash; the recent list is a JSON field.
type CachedRatingSummary struct {
	SupplierPartyID int64
	Count           int64
	Average         decimal.Decimal
	Recent          []CachedRating
}

// RatingSummaryCache stores rating summaries keyed by supplier party id.
// Key format: "rating_summary:{supplierPartyID}"
type RatingSummaryCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewRatingSummaryCache creates a cache whose entries expire after ttl.
func NewRatingSummaryCache(r *RedisClient, ttl time.Duration) *RatingSummaryCache {
	return &RatingSummaryCache{client: r, ttl: ttl}
}

// Get returns redis.Nil when no summary is cached.
func (c *RatingSummaryCache) Get(ctx context.Context, supplierPartyID int64) (*CachedRatingSummary, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(supplierPartyID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}

	count, err := strconv.ParseInt(vals["count"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse count: %w", err)
	}
	avg, err := decimal.NewFromString(vals["average"])
	if err != nil {
		return nil, fmt.Errorf("cache parse average: %w", err)
	}
	var recent []CachedRating
	if err := json.Unmarshal([]byte(vals["recent"]), &recent); err != nil {
		return nil, fmt.Errorf("cache parse recent: %w", err)
	}

	return &CachedRatingSummary{
		SupplierPartyID: supplierPartyID,
		Count:           count,
		Average:         avg,
		Recent:          recent,
	}, nil
}

// Generation returns the supplier's invalidation counter, 0 if it was never
// invalidated. Read it before computing a summary and pass it to SetIfCurrent.
func (c *RatingSummaryCache) Generation(ctx context.Context, supplierPartyID int64) (int64, error) {
	n, err := c.client.Client().Get(ctx, c.genKey(supplierPartyID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return n, nil
}

// SetIfCurrent writes the summary and its TTL unless Delete ran for the
// supplier after generation gen was read. A lost race returns ErrStaleSummary.
func (c *RatingSummaryCache) SetIfCurrent(ctx context.Context, s *CachedRatingSummary, gen int64) error {
	recent, err := json.Marshal(s.Recent)
	if err != nil {
		return fmt.Errorf("cache encode recent: %w", err)
	}
	key, genKey := c.key(s.SupplierPartyID), c.genKey(s.SupplierPartyID)

	err = c.client.Client().Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return ErrStaleSummary
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				"count", strconv.FormatInt(s.Count, 10),
				"average", s.Average.String(),
				"recent", string(recent),
			)
			pipe.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStaleSummary), errors.Is(err, redis.TxFailedErr):
		return ErrStaleSummary
	default:
		return fmt.Errorf("cache set: %w", err)
	}
}

// Delete drops a cached summary and bumps the supplier's generation so that
// summaries computed before the call are not written back. Deleting a
// missing key is not an error.
func (c *RatingSummaryCache) Delete(ctx context.Context, supplierPartyID int64) error {
	genKey := c.genKey(supplierPartyID)
	_, err := c.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key(supplierPartyID))
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *RatingSummaryCache) key(supplierPartyID int64) string {
	return fmt.Sprintf("%s:%d", ratingCacheKeyPrefix, supplierPartyID)
}

func (c *RatingSummaryCache) genKey(supplierPartyID int64) string {
	return fmt.Sprintf("%s:%d", ratingGenKeyPrefix, supplierPartyID)
}
