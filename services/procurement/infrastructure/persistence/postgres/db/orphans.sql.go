// Statements from queries/orphans.sql.

package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const countOrphanedRequisitions = `-- name: CountOrphanedRequisitions :one
SELECT COUNT(*) FROM procurement.orphaned_requisitions
`

func (q *Queries) CountOrphanedRequisitions(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countOrphanedRequisitions)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const insertOrphanedRequisition = `-- name: InsertOrphanedRequisition :execrows
INSERT INTO procurement.orphaned_requisitions (
    event_id, requisition_header_id, item_id, quantity, business_unit_id,
    preparer_id, failure_status, failure_detail, occurred_at, recorded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (event_id) DO NOTHING
`

type InsertOrphanedRequisitionParams struct {
	EventID             uuid.UUID
	RequisitionHeaderID int64
	ItemID              int64
	Quantity            decimal.Decimal
	BusinessUnitID      int64
	PreparerID          int64
	FailureStatus       int32
	FailureDetail       []byte
	OccurredAt          time.Time
	RecordedAt          time.Time
}

func (q *Queries) InsertOrphanedRequisition(ctx context.Context, arg InsertOrphanedRequisitionParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertOrphanedRequisition,
		arg.EventID,
		arg.RequisitionHeaderID,
		arg.ItemID,
		arg.Quantity,
		arg.BusinessUnitID,
		arg.PreparerID,
		arg.FailureStatus,
		arg.FailureDetail,
		arg.OccurredAt,
		arg.RecordedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listOrphanedRequisitions = `-- name: ListOrphanedRequisitions :many
SELECT event_id, requisition_header_id, item_id, quantity, business_unit_id,
       preparer_id, failure_status, failure_detail, occurred_at, recorded_at
FROM procurement.orphaned_requisitions
ORDER BY occurred_at DESC
LIMIT $1 OFFSET $2
`

type ListOrphanedRequisitionsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListOrphanedRequisitions(ctx context.Context, arg ListOrphanedRequisitionsParams) ([]ProcurementOrphanedRequisition, error) {
	rows, err := q.db.QueryContext(ctx, listOrphanedRequisitions, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProcurementOrphanedRequisition
	for rows.Next() {
		var i ProcurementOrphanedRequisition
		if err := rows.Scan(
			&i.EventID,
			&i.RequisitionHeaderID,
			&i.ItemID,
			&i.Quantity,
			&i.BusinessUnitID,
			&i.PreparerID,
			&i.FailureStatus,
			&i.FailureDetail,
			&i.OccurredAt,
			&i.RecordedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
