package handlers

import (
	"net/http"
	"strings"

	"github.com/ralungei/fusion-procurement/pkg/errhttp"
	"github.com/ralungei/fusion-procurement/pkg/httpx"
	pkgvalidator "github.com/ralungei/fusion-procurement/pkg/validator"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// IdempotencyKeyHeader carries the client's submission key.
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 255

// CreateRequisitionRequest is the request body for POST /api/requisitions.
type CreateRequisitionRequest struct {
	ItemID                    models.ID `json:"item_id" validate:"required,gt=0" example:"300000047520511"`
	Quantity                  float64   `json:"quantity" validate:"required,gt=0" example:"5"`
	BusinessUnitID            models.ID `json:"business_unit_id" validate:"required,gt=0" example:"300000046987012"`
	DestinationOrganizationID models.ID `json:"destination_organization_id" validate:"required,gt=0" example:"300000047274444"`
	DeliverToLocationID       models.ID `json:"deliver_to_location_id" validate:"required,gt=0" example:"300000047274425"`
	RequestedDeliveryDate     string    `json:"requested_delivery_date" validate:"omitempty,datetime=2006-01-02" example:"2026-10-24"`
} // @name CreateRequisitionRequest

// RequisitionResponse is returned when the header and its line were created.
type RequisitionResponse struct {
	Status              string                  `json:"status" example:"created"`
	RequisitionHeaderID models.ID               `json:"requisition_header_id" example:"300000320128467"`
	Requisition         string                  `json:"requisition,omitempty" example:"REQ-1042"`
	Line                *models.RequisitionLine `json:"line"`
} // @name RequisitionResponse

// PartialFailureResponse is returned when the header was created but its line
// was rejected. The header stays in the backend and needs remediation.
type PartialFailureResponse struct {
	Status              string    `json:"status" example:"partial_failure"`
	Error               string    `json:"error" example:"requisition header created but line creation failed"`
	RequisitionHeaderID models.ID `json:"requisition_header_id" example:"300000320128467"`
	BackendStatus       int       `json:"backend_status,omitempty" example:"400"`
	Detail              any       `json:"detail"`
} // @name PartialFailureResponse

// PostRequisitionHandler handles POST /api/requisitions requests.
type PostRequisitionHandler struct {
	svc *appsvcs.Services
}

// NewPostRequisitionHandler returns a PostRequisitionHandler backed by the given services.
func NewPostRequisitionHandler(svc *appsvcs.Services) *PostRequisitionHandler {
	return &PostRequisitionHandler{svc: svc}
}

// Execute creates a requisition header and its single line for the acting user.
//
//	@Summary		Submit requisition
//	@Description	Creates the requisition header, then its line. A rejected line leaves the header in place and is reported as partial_failure
//	@Tags			requisitions
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string						false	"Client submission key"
//	@Param			request			body		CreateRequisitionRequest	true	"Requisition"
//	@Success		201				{object}	RequisitionResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		502				{object}	PartialFailureResponse
//	@Router			/api/requisitions [post]
func (h *PostRequisitionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	personID, ok := actingUser(w, r)
	if !ok {
		return
	}

	key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	if len(key) > maxIdempotencyKeyLen {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "Idempotency-Key is too long"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateRequisitionRequest](w, r)
	if !ok {
		return
	}

	outcome, err := h.svc.Requisitions.Submit(r.Context(), models.RequisitionRequest{
		ItemID:                    req.ItemID,
		Quantity:                  req.Quantity,
		BusinessUnitID:            req.BusinessUnitID,
		DestinationOrganizationID: req.DestinationOrganizationID,
		DeliverToLocationID:       req.DeliverToLocationID,
		RequestedDeliveryDate:     req.RequestedDeliveryDate,
		PreparerID:                personID,
		IdempotencyKey:            key,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if outcome.Partial() {
		resp := PartialFailureResponse{
			Status:              "partial_failure",
			Error:               "requisition header created but line creation failed",
			RequisitionHeaderID: outcome.Header.RequisitionHeaderID,
		}
		if le := outcome.LineError; le != nil {
			resp.BackendStatus = le.StatusCode
			resp.Detail = le.Message
			if len(le.Payload) > 0 {
				resp.Detail = le.Payload
			}
		}
		httpx.JSON(w, http.StatusBadGateway, resp)
		return
	}

	httpx.JSON(w, http.StatusCreated, RequisitionResponse{
		Status:              "created",
		RequisitionHeaderID: outcome.Header.RequisitionHeaderID,
		Requisition:         outcome.Header.Requisition,
		Line:                outcome.Line,
	})
}
