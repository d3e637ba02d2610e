package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Topics published by the requisition writer.
const (
	TopicRequisitionSubmitted  = "requisition.submitted"
	TopicRequisitionLineFailed = "requisition.line_failed"
)

// RequisitionSubmittedEvent is published after header and line both exist.
type RequisitionSubmittedEvent struct {
	EventID             uuid.UUID `json:"event_id"`
	Version             int       `json:"version"`
	RequisitionHeaderID int64     `json:"requisition_header_id"`
	RequisitionLineID   int64     `json:"requisition_line_id,omitempty"`
	ItemID              int64     `json:"item_id"`
	Quantity            float64   `json:"quantity"`
	BusinessUnitID      int64     `json:"business_unit_id"`
	PreparerID          int64     `json:"preparer_id"`
	OccurredAt          time.Time `json:"occurred_at"`
}

// RequisitionLineFailedEvent is published when a header was created but its
// line was rejected. The worker records it as an orphaned requisition.
type RequisitionLineFailedEvent struct {
	EventID             uuid.UUID       `json:"event_id"`
	Version             int             `json:"version"`
	RequisitionHeaderID int64           `json:"requisition_header_id"`
	ItemID              int64           `json:"item_id"`
	Quantity            float64         `json:"quantity"`
	BusinessUnitID      int64           `json:"business_unit_id"`
	PreparerID          int64           `json:"preparer_id"`
	FailureStatus       int             `json:"failure_status,omitempty"`
	FailureDetail       json.RawMessage `json:"failure_detail,omitempty"`
	OccurredAt          time.Time       `json:"occurred_at"`
}
