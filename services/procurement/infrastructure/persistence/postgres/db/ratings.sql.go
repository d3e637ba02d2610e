// Statements from queries/ratings.sql.

package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const insertRating = `-- name: InsertRating :exec
INSERT INTO procurement.supplier_ratings (id, supplier_party_id, rated_by, score, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertRatingParams struct {
	ID              uuid.UUID
	SupplierPartyID int64
	RatedBy         int64
	Score           int16
	Comment         string
	CreatedAt       time.Time
}

func (q *Queries) InsertRating(ctx context.Context, arg InsertRatingParams) error {
	_, err := q.db.ExecContext(ctx, insertRating,
		arg.ID,
		arg.SupplierPartyID,
		arg.RatedBy,
		arg.Score,
		arg.Comment,
		arg.CreatedAt,
	)
	return err
}

const ratingStats = `-- name: RatingStats :one
SELECT COUNT(*)::bigint AS count, COALESCE(SUM(score), 0)::bigint AS total
FROM procurement.supplier_ratings
WHERE supplier_party_id = $1
`

type RatingStatsRow struct {
	Count int64
	Total int64
}

func (q *Queries) RatingStats(ctx context.Context, supplierPartyID int64) (RatingStatsRow, error) {
	row := q.db.QueryRowContext(ctx, ratingStats, supplierPartyID)
	var i RatingStatsRow
	err := row.Scan(&i.Count, &i.Total)
	return i, err
}

const recentRatings = `-- name: RecentRatings :many
SELECT id, supplier_party_id, rated_by, score, comment, created_at
FROM procurement.supplier_ratings
WHERE supplier_party_id = $1
ORDER BY created_at DESC
LIMIT $2
`

type RecentRatingsParams struct {
	SupplierPartyID int64
	Limit           int32
}

func (q *Queries) RecentRatings(ctx context.Context, arg RecentRatingsParams) ([]ProcurementSupplierRating, error) {
	rows, err := q.db.QueryContext(ctx, recentRatings, arg.SupplierPartyID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProcurementSupplierRating
	for rows.Next() {
		var i ProcurementSupplierRating
		if err := rows.Scan(
			&i.ID,
			&i.SupplierPartyID,
			&i.RatedBy,
			&i.Score,
			&i.Comment,
			&i.CreatedAt,
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
