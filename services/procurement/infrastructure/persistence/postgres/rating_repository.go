package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ralungei/fusion-procurement/pkg/database"
	"github.com/ralungei/fusion-procurement/pkg/events"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	domainevents "github.com/ralungei/fusion-procurement/services/procurement/domain/events"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// RatingRepository implements repositories.RatingRepository against PostgreSQL.
type RatingRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewRatingRepository returns a RatingRepository. The bus publishes
// SupplierRatingRecordedEvents inside the insert transaction; it may be nil.
func NewRatingRepository(database *database.Database, bus *events.EventBus) *RatingRepository {
	return &RatingRepository{db: database, bus: bus}
}

// Save inserts the rating and publishes the recorded event atomically.
// Returns ErrRatingAlreadyExists on the one-rating-per-user constraint.
func (r *RatingRepository) Save(ctx context.Context, rating *models.Rating) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertRating(ctx, db.InsertRatingParams{
			ID:              rating.ID,
			SupplierPartyID: int64(rating.SupplierPartyID),
			RatedBy:         int64(rating.RatedBy),
			Score:           int16(rating.Score),
			Comment:         rating.Comment,
			CreatedAt:       rating.CreatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domain.ErrRatingAlreadyExists
			}
			return fmt.Errorf("insert rating: %w", err)
		}

		if r.bus != nil {
			if err := r.publishRecorded(tx, rating); err != nil {
				return fmt.Errorf("publish rating recorded: %w", err)
			}
		}
		return nil
	})
}

// Summary aggregates count and average and loads the most recent ratings.
func (r *RatingRepository) Summary(ctx context.Context, supplierPartyID models.ID, recent int) (*models.RatingSummary, error) {
	q := db.New(r.db.DB())

	stats, err := q.RatingStats(ctx, int64(supplierPartyID))
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}

	rows, err := q.RecentRatings(ctx, db.RecentRatingsParams{
		SupplierPartyID: int64(supplierPartyID),
		Limit:           int32(recent),
	})
	if err != nil {
		return nil, fmt.Errorf("recent ratings: %w", err)
	}

	views := make([]models.RatingView, len(rows))
	for i, row := range rows {
		views[i] = models.RatingView{
			Score:     int(row.Score),
			Comment:   row.Comment,
			RatedBy:   models.ID(row.RatedBy),
			CreatedAt: row.CreatedAt,
		}
	}
	return &models.RatingSummary{
		SupplierPartyID: supplierPartyID,
		Count:           stats.Count,
		Average:         models.AverageOf(stats.Total, stats.Count),
		Recent:          views,
	}, nil
}

func (r *RatingRepository) publishRecorded(tx *sql.Tx, rating *models.Rating) error {
	event := domainevents.SupplierRatingRecordedEvent{
		EventID:         uuid.New(),
		Version:         1,
		RatingID:        rating.ID,
		SupplierPartyID: int64(rating.SupplierPartyID),
		RatedBy:         int64(rating.RatedBy),
		Score:           rating.Score,
		OccurredAt:      rating.CreatedAt,
	}
	msg, err := events.NewMessage(event.EventID.String(), event.Version, event)
	if err != nil {
		return err
	}
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicSupplierRatingRecorded, msg)
}
