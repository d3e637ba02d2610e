package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicSupplierRatingRecorded is published in the same transaction as the rating insert.
const TopicSupplierRatingRecorded = "supplier_rating.recorded"

// SupplierRatingRecordedEvent tells consumers a supplier's rating summary changed.
type SupplierRatingRecordedEvent struct {
	EventID         uuid.UUID `json:"event_id"`
	Version         int       `json:"version"`
	RatingID        uuid.UUID `json:"rating_id"`
	SupplierPartyID int64     `json:"supplier_party_id"`
	RatedBy         int64     `json:"rated_by"`
	Score           int       `json:"score"`
	OccurredAt      time.Time `json:"occurred_at"`
}
