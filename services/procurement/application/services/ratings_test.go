package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgcache "github.com/ralungei/fusion-procurement/pkg/cache"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

var errCacheMiss = redis.Nil

func TestRatingService_Record(t *testing.T) {
	repo := &fakeRatings{}
	cache := newFakeSummaryCache()
	cache.entries[7001] = &pkgcache.CachedRatingSummary{SupplierPartyID: 7001, Count: 3}
	svc := NewRatingService(repo, cache, logger.Nop())

	rating, err := svc.Record(context.Background(), 42, 7001, 4, "  on time  ")

	require.NoError(t, err)
	assert.Equal(t, "on time", rating.Comment)
	assert.Equal(t, models.ID(42), rating.RatedBy)
	require.Len(t, repo.saved, 1)
	assert.False(t, cache.has(7001), "recording invalidates the cached summary")
}

func TestRatingService_RecordRejectsInvalidRating(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		comment string
	}{
		{"score too low", 0, ""},
		{"score too high", 6, ""},
		{"comment too long", 3, strings.Repeat("x", models.MaxRatingComment+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRatings{}

			_, err := NewRatingService(repo, nil, logger.Nop()).Record(context.Background(), 42, 7001, tt.score, tt.comment)

			assert.ErrorIs(t, err, domain.ErrInvalidRating)
			assert.Empty(t, repo.saved)
		})
	}
}

func TestRatingService_RecordDuplicate(t *testing.T) {
	repo := &fakeRatings{saveErr: domain.ErrRatingAlreadyExists}

	_, err := NewRatingService(repo, nil, logger.Nop()).Record(context.Background(), 42, 7001, 5, "")

	assert.ErrorIs(t, err, domain.ErrRatingAlreadyExists)
}

func TestRatingService_SummaryCacheHit(t *testing.T) {
	repo := &fakeRatings{}
	cache := newFakeSummaryCache()
	cache.entries[7001] = &pkgcache.CachedRatingSummary{
		SupplierPartyID: 7001,
		Count:           2,
		Average:         decimal.RequireFromString("4.50"),
		Recent:          []pkgcache.CachedRating{{Score: 5, RatedBy: 42, CreatedAt: fixedNow}},
	}

	summary, err := NewRatingService(repo, cache, logger.Nop()).Summary(context.Background(), 7001)

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.True(t, summary.Average.Equal(decimal.RequireFromString("4.5")))
	require.Len(t, summary.Recent, 1)
	assert.Equal(t, models.ID(42), summary.Recent[0].RatedBy)
	assert.Zero(t, repo.summaries, "database is not read on a hit")
}

func TestRatingService_SummaryMissWarmsCache(t *testing.T) {
	repo := &fakeRatings{summary: &models.RatingSummary{SupplierPartyID: 7001, Count: 1, Average: decimal.NewFromInt(3), Recent: []models.RatingView{}}}
	cache := newFakeSummaryCache()

	summary, err := NewRatingService(repo, cache, logger.Nop()).Summary(context.Background(), 7001)

	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
	assert.Equal(t, 1, repo.summaries)
	assert.Eventually(t, func() bool { return cache.has(7001) }, time.Second, 10*time.Millisecond)
}

func TestRatingService_SummaryNotWarmedAfterConcurrentRecord(t *testing.T) {
	repo := &fakeRatings{summary: &models.RatingSummary{SupplierPartyID: 7001, Count: 1, Average: decimal.NewFromInt(3), Recent: []models.RatingView{}}}
	cache := newFakeSummaryCache()
	svc := NewRatingService(repo, cache, logger.Nop())
	repo.onSummary = func() {
		repo.onSummary = nil
		_, err := svc.Record(context.Background(), 43, 7001, 5, "")
		require.NoError(t, err)
	}

	summary, err := svc.Summary(context.Background(), 7001)

	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
	assert.Eventually(t, func() bool { return cache.writeAttempts() == 1 }, time.Second, 10*time.Millisecond)
	assert.False(t, cache.has(7001), "a summary read before the invalidation must not be cached")
}

func TestRatingService_SummaryGenerationErrorSkipsWarm(t *testing.T) {
	repo := &fakeRatings{}
	cache := newFakeSummaryCache()
	cache.genErr = errors.New("redis down")

	_, err := NewRatingService(repo, cache, logger.Nop()).Summary(context.Background(), 7001)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.summaries)
	assert.Never(t, func() bool { return cache.writeAttempts() > 0 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestRatingService_SummaryCacheErrorFallsBack(t *testing.T) {
	repo := &fakeRatings{}
	cache := newFakeSummaryCache()
	cache.getErr = errors.New("redis down")

	summary, err := NewRatingService(repo, cache, logger.Nop()).Summary(context.Background(), 7001)

	require.NoError(t, err)
	assert.Equal(t, models.ID(7001), summary.SupplierPartyID)
	assert.Equal(t, 1, repo.summaries)
}

func TestRatingService_SummaryWithoutCache(t *testing.T) {
	repo := &fakeRatings{}

	_, err := NewRatingService(repo, nil, logger.Nop()).Summary(context.Background(), 7001)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.summaries)
}

func TestRatingService_SummaryInvalidID(t *testing.T) {
	_, err := NewRatingService(&fakeRatings{}, nil, logger.Nop()).Summary(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRatingService_Invalidate(t *testing.T) {
	cache := newFakeSummaryCache()
	svc := NewRatingService(&fakeRatings{}, cache, logger.Nop())

	require.NoError(t, svc.Invalidate(context.Background(), 7001))
	assert.Equal(t, []int64{7001}, cache.deleted)

	assert.NoError(t, NewRatingService(&fakeRatings{}, nil, logger.Nop()).Invalidate(context.Background(), 7001))
}
