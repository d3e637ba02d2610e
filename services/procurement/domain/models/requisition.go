package models

import (
	"encoding/json"
	"time"
)

// Fixed values of every requisition created by this service.
const (
	RequisitionLineNumber      = 1
	RequisitionLineTypeID      = 1
	RequisitionUOM             = "Ea"
	RequisitionDestinationType = "EXPENSE"
	RequisitionDateLayout      = "2006-01-02"
	DefaultDeliveryLeadTime    = 7 * 24 * time.Hour
)

// RequisitionRequest is one submission. PreparerID is the acting user.
type RequisitionRequest struct {
	ItemID                    ID
	Quantity                  float64
	BusinessUnitID            ID
	DestinationOrganizationID ID
	DeliverToLocationID       ID
	RequestedDeliveryDate     string
	PreparerID                ID
	IdempotencyKey            string
}

// RequisitionHeaderPayload is the body of the header create call.
type RequisitionHeaderPayload struct {
	PreparerID            ID     `json:"PreparerId"`
	RequisitioningBUID    ID     `json:"RequisitioningBUId"`
	Description           string `json:"Description"`
	ExternallyManagedFlag bool   `json:"ExternallyManagedFlag"`
}

// RequisitionLinePayload is the body of the line create call.
type RequisitionLinePayload struct {
	LineNumber                int     `json:"LineNumber"`
	LineTypeID                int     `json:"LineTypeId"`
	ItemID                    ID      `json:"ItemId"`
	Quantity                  float64 `json:"Quantity"`
	UOM                       string  `json:"UOM"`
	DestinationOrganizationID ID      `json:"DestinationOrganizationId"`
	DeliverToLocationID       ID      `json:"DeliverToLocationId"`
	RequestedDeliveryDate     string  `json:"RequestedDeliveryDate"`
	DestinationTypeCode       string  `json:"DestinationTypeCode"`
	RequesterID               ID      `json:"RequesterId"`
}

// RequisitionHeader is the backend's header create response.
type RequisitionHeader struct {
	RequisitionHeaderID ID     `json:"RequisitionHeaderId"`
	Requisition         string `json:"Requisition,omitempty"`
	Description         string `json:"Description"`
	PreparerID          ID     `json:"PreparerId"`
	RequisitioningBUID  ID     `json:"RequisitioningBUId"`
	DocumentStatus      string `json:"DocumentStatus,omitempty"`
}

// RequisitionLine is the backend's line create response.
type RequisitionLine struct {
	RequisitionLineID         ID      `json:"RequisitionLineId,omitempty"`
	LineNumber                int     `json:"LineNumber"`
	ItemID                    ID      `json:"ItemId"`
	Quantity                  float64 `json:"Quantity"`
	UOM                       string  `json:"UOM"`
	DestinationOrganizationID ID      `json:"DestinationOrganizationId"`
	DeliverToLocationID       ID      `json:"DeliverToLocationId"`
	RequestedDeliveryDate     string  `json:"RequestedDeliveryDate"`
}

// RequisitionState is the terminal state of a submission that created a header.
type RequisitionState string

const (
	RequisitionLineCreated RequisitionState = "line_created"
	RequisitionLineFailed  RequisitionState = "line_failed"
)

// BackendError describes a failed backend call for the caller.
type BackendError struct {
	StatusCode int             `json:"status_code,omitempty"`
	Message    string          `json:"message"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// RequisitionOutcome is the result of a submission that got past the header.
// Line is set only for RequisitionLineCreated; LineError only for
// RequisitionLineFailed, where the header exists remotely and is not undone.
type RequisitionOutcome struct {
	State     RequisitionState  `json:"state"`
	Header    RequisitionHeader `json:"header"`
	Line      *RequisitionLine  `json:"line,omitempty"`
	LineError *BackendError     `json:"line_error,omitempty"`
}

// Partial reports whether the header exists without a line.
func (o *RequisitionOutcome) Partial() bool {
	return o.State == RequisitionLineFailed
}

// DefaultDeliveryDate returns now plus the default lead time as YYYY-MM-DD.
func DefaultDeliveryDate(now time.Time) string {
	return now.Add(DefaultDeliveryLeadTime).Format(RequisitionDateLayout)
}
