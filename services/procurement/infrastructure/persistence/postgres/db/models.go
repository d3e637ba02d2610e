package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProcurementOrphanedRequisition struct {
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

type ProcurementSupplierRating struct {
	ID              uuid.UUID
	SupplierPartyID int64
	RatedBy         int64
	Score           int16
	Comment         string
	CreatedAt       time.Time
}
