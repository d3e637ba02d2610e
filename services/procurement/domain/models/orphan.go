package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrphanedRequisition is a header left without a line after a failed line
// create. It is kept for manual remediation in the backend.
type OrphanedRequisition struct {
	EventID             uuid.UUID       `json:"event_id"`
	RequisitionHeaderID ID              `json:"requisition_header_id"`
	ItemID              ID              `json:"item_id"`
	Quantity            float64         `json:"quantity"`
	BusinessUnitID      ID              `json:"business_unit_id"`
	PreparerID          ID              `json:"preparer_id"`
	FailureStatus       int             `json:"failure_status,omitempty"`
	FailureDetail       json.RawMessage `json:"failure_detail,omitempty"`
	OccurredAt          time.Time       `json:"occurred_at"`
	RecordedAt          time.Time       `json:"recorded_at"`
}
