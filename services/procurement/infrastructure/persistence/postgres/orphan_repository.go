package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ralungei/fusion-procurement/pkg/database"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
	"github.com/ralungei/fusion-procurement/services/procurement/infrastructure/persistence/postgres/db"
)

// OrphanRepository implements repositories.OrphanRepository against PostgreSQL.
type OrphanRepository struct {
	db *database.Database
}

// NewOrphanRepository returns an OrphanRepository.
func NewOrphanRepository(database *database.Database) *OrphanRepository {
	return &OrphanRepository{db: database}
}

// Record inserts o keyed by its event id; a redelivered event inserts nothing.
func (r *OrphanRepository) Record(ctx context.Context, o *models.OrphanedRequisition) (bool, error) {
	detail := []byte(o.FailureDetail)
	if len(detail) == 0 {
		detail = []byte("{}")
	}
	n, err := db.New(r.db.DB()).InsertOrphanedRequisition(ctx, db.InsertOrphanedRequisitionParams{
		EventID:             o.EventID,
		RequisitionHeaderID: int64(o.RequisitionHeaderID),
		ItemID:              int64(o.ItemID),
		Quantity:            decimal.NewFromFloat(o.Quantity),
		BusinessUnitID:      int64(o.BusinessUnitID),
		PreparerID:          int64(o.PreparerID),
		FailureStatus:       int32(o.FailureStatus),
		FailureDetail:       detail,
		OccurredAt:          o.OccurredAt,
		RecordedAt:          o.RecordedAt,
	})
	if err != nil {
		return false, fmt.Errorf("insert orphaned requisition: %w", err)
	}
	return n > 0, nil
}

// List returns one page, newest first, and the total count.
func (r *OrphanRepository) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.OrphanedRequisition, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.ListOrphanedRequisitions(ctx, db.ListOrphanedRequisitionsParams{
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query orphaned requisitions: %w", err)
	}

	total, err := q.CountOrphanedRequisitions(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count orphaned requisitions: %w", err)
	}

	out := make([]*models.OrphanedRequisition, len(rows))
	for i, row := range rows {
		out[i] = rowToOrphan(row)
	}
	return out, int(total), nil
}

func rowToOrphan(row db.ProcurementOrphanedRequisition) *models.OrphanedRequisition {
	return &models.OrphanedRequisition{
		EventID:             row.EventID,
		RequisitionHeaderID: models.ID(row.RequisitionHeaderID),
		ItemID:              models.ID(row.ItemID),
		Quantity:            row.Quantity.InexactFloat64(),
		BusinessUnitID:      models.ID(row.BusinessUnitID),
		PreparerID:          models.ID(row.PreparerID),
		FailureStatus:       int(row.FailureStatus),
		FailureDetail:       row.FailureDetail,
		OccurredAt:          row.OccurredAt,
		RecordedAt:          row.RecordedAt,
	}
}
