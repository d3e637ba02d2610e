package repositories

import (
	"context"

	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// RatingRepository is the persistence interface for supplier ratings.
type RatingRepository interface {
	// Save inserts the rating and publishes SupplierRatingRecordedEvent in the
	// same transaction. Returns ErrRatingAlreadyExists when the rater already
	// rated the supplier.
	Save(ctx context.Context, r *models.Rating) error

	// Summary aggregates the supplier's ratings with the given number of recent entries.
	Summary(ctx context.Context, supplierPartyID models.ID, recent int) (*models.RatingSummary, error)
}

// OrphanRepository is the register of headers left without a line.
type OrphanRepository interface {
	// Record inserts o unless its event id is already recorded.
	// It reports whether a row was inserted.
	Record(ctx context.Context, o *models.OrphanedRequisition) (bool, error)

	// List returns the newest orphans first plus the total count.
	List(ctx context.Context, opts QueryOpts) ([]*models.OrphanedRequisition, int, error)
}
