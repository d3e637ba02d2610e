package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ralungei/fusion-procurement/pkg/logger"
	domainevents "github.com/ralungei/fusion-procurement/services/procurement/domain/events"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
)

// MaxOrphanPage bounds one page of the orphan register.
const MaxOrphanPage = 100

// OrphanRegister keeps requisition headers whose line failed.
type OrphanRegister struct {
	repo repositories.OrphanRepository
	now  func() time.Time
	log  logger.Logger
}

// NewOrphanRegister returns an OrphanRegister.
func NewOrphanRegister(repo repositories.OrphanRepository, log logger.Logger) *OrphanRegister {
	return &OrphanRegister{repo: repo, now: time.Now, log: log}
}

// RecordLineFailure stores the event. Redelivered events are ignored.
func (o *OrphanRegister) RecordLineFailure(ctx context.Context, evt domainevents.RequisitionLineFailedEvent) error {
	inserted, err := o.repo.Record(ctx, &models.OrphanedRequisition{
		EventID:             evt.EventID,
		RequisitionHeaderID: models.ID(evt.RequisitionHeaderID),
		ItemID:              models.ID(evt.ItemID),
		Quantity:            evt.Quantity,
		BusinessUnitID:      models.ID(evt.BusinessUnitID),
		PreparerID:          models.ID(evt.PreparerID),
		FailureStatus:       evt.FailureStatus,
		FailureDetail:       evt.FailureDetail,
		OccurredAt:          evt.OccurredAt,
		RecordedAt:          o.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("record orphaned requisition: %w", err)
	}
	if inserted {
		o.log.InfoContext(ctx, "orphaned requisition recorded", "requisition_header_id", evt.RequisitionHeaderID)
	}
	return nil
}

// List returns one page of orphans, newest first, and the total count.
func (o *OrphanRegister) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.OrphanedRequisition, int, error) {
	if opts.Limit <= 0 || opts.Limit > MaxOrphanPage {
		opts.Limit = MaxOrphanPage
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	orphans, total, err := o.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list orphaned requisitions: %w", err)
	}
	return orphans, total, nil
}
