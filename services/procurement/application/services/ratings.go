package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ralungei/fusion-procurement/pkg/cache"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
)

// SummaryCache stores rating summaries. *cache.RatingSummaryCache implements it.
// Delete bumps the supplier's generation; SetIfCurrent refuses to write a
// summary read under an older generation.
type SummaryCache interface {
	Get(ctx context.Context, supplierPartyID int64) (*pkgcache.CachedRatingSummary, error)
	Generation(ctx context.Context, supplierPartyID int64) (int64, error)
	SetIfCurrent(ctx context.Context, s *pkgcache.CachedRatingSummary, gen int64) error
	Delete(ctx context.Context, supplierPartyID int64) error
}

// RatingService records supplier ratings and serves their summaries.
// The repository publishes SupplierRatingRecordedEvent; reads go through the
// Redis cache when one is configured.
type RatingService struct {
	repo  repositories.RatingRepository
	cache SummaryCache
	now   func() time.Time
	log   logger.Logger
}

// NewRatingService returns a RatingService. summaries may be nil.
func NewRatingService(repo repositories.RatingRepository, summaries SummaryCache, log logger.Logger) *RatingService {
	return &RatingService{repo: repo, cache: summaries, now: time.Now, log: log}
}

// Record stores a rating of the supplier by personID.
func (s *RatingService) Record(ctx context.Context, personID, supplierPartyID models.ID, score int, comment string) (*models.Rating, error) {
	rating, err := models.NewRating(supplierPartyID, personID, score, comment, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRating, err)
	}
	if err := s.repo.Save(ctx, rating); err != nil {
		return nil, fmt.Errorf("save rating: %w", err)
	}
	if err := s.Invalidate(ctx, supplierPartyID); err != nil {
		s.log.WarnContext(ctx, "rating summary invalidation failed", "supplier_party_id", supplierPartyID, "error", err)
	}
	return rating, nil
}

// Summary returns the supplier's rating summary using a read-through cache:
//  1. Check Redis first.
//  2. On a miss or cache error, aggregate in Postgres.
//  3. Warm the cache asynchronously with the result, unless the summary was
//     invalidated while it was being computed.
func (s *RatingService) Summary(ctx context.Context, supplierPartyID models.ID) (*models.RatingSummary, error) {
	if !supplierPartyID.Valid() {
		return nil, fmt.Errorf("%w: supplier party id must be positive", domain.ErrInvalidInput)
	}

	warm := s.cache != nil
	var gen int64
	if warm {
		cached, err := s.cache.Get(ctx, int64(supplierPartyID))
		if err == nil {
			return fromCachedSummary(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "rating summary cache read failed", "supplier_party_id", supplierPartyID, "error", err)
		}
		if gen, err = s.cache.Generation(ctx, int64(supplierPartyID)); err != nil {
			s.log.WarnContext(ctx, "rating summary generation read failed", "supplier_party_id", supplierPartyID, "error", err)
			warm = false
		}
	}

	summary, err := s.repo.Summary(ctx, supplierPartyID, models.RecentRatingsInView)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}

	if warm {
		warmCtx := context.WithoutCancel(ctx)
		go func() {
			ctx, cancel := context.WithTimeout(warmCtx, 2*time.Second)
			defer cancel()
			err := s.cache.SetIfCurrent(ctx, toCachedSummary(summary), gen)
			switch {
			case errors.Is(err, pkgcache.ErrStaleSummary):
				s.log.DebugContext(ctx, "rating summary changed while computing; not cached", "supplier_party_id", summary.SupplierPartyID)
			case err != nil:
				s.log.WarnContext(ctx, "rating summary cache write failed", "supplier_party_id", summary.SupplierPartyID, "error", err)
			}
		}()
	}
	return summary, nil
}

// Invalidate drops the cached summary of the supplier.
func (s *RatingService) Invalidate(ctx context.Context, supplierPartyID models.ID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, int64(supplierPartyID))
}

func toCachedSummary(s *models.RatingSummary) *pkgcache.CachedRatingSummary {
	recent := make([]pkgcache.CachedRating, len(s.Recent))
	for i, r := range s.Recent {
		recent[i] = pkgcache.CachedRating{Score: r.Score, Comment: r.Comment, RatedBy: int64(r.RatedBy), CreatedAt: r.CreatedAt}
	}
	return &pkgcache.CachedRatingSummary{
		SupplierPartyID: int64(s.SupplierPartyID),
		Count:           s.Count,
		Average:         s.Average,
		Recent:          recent,
	}
}

func fromCachedSummary(c *pkgcache.CachedRatingSummary) *models.RatingSummary {
	recent := make([]models.RatingView, len(c.Recent))
	for i, r := range c.Recent {
		recent[i] = models.RatingView{Score: r.Score, Comment: r.Comment, RatedBy: models.ID(r.RatedBy), CreatedAt: r.CreatedAt}
	}
	return &models.RatingSummary{
		SupplierPartyID: models.ID(c.SupplierPartyID),
		Count:           c.Count,
		Average:         c.Average,
		Recent:          recent,
	}
}
