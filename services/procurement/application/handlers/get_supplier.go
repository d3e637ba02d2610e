package handlers

import (
	"net/http"

	"github.com/ralungei/fusion-procurement/pkg/errhttp"
	"github.com/ralungei/fusion-procurement/pkg/httpx"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// GetSupplierHandler handles GET /api/suppliers/{supplierPartyId} requests.
type GetSupplierHandler struct {
	svc *appsvcs.Services
}

// NewGetSupplierHandler returns a GetSupplierHandler backed by the given services.
func NewGetSupplierHandler(svc *appsvcs.Services) *GetSupplierHandler {
	return &GetSupplierHandler{svc: svc}
}

// Execute returns a supplier profile.
//
//	@Summary		Get supplier
//	@Description	Returns the supplier's record, addresses, reachable contacts and the sites in the acting user's business units, optionally narrowed to one business unit
//	@Tags			suppliers
//	@Produce		json
//	@Param			supplierPartyId	path		int	true	"Supplier party id"
//	@Param			bu_id			query		int	false	"Procurement business unit id"
//	@Success		200				{object}	models.SupplierDetail
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		502				{object}	ErrorResponse
//	@Router			/api/suppliers/{supplierPartyId} [get]
func (h *GetSupplierHandler) Execute(w http.ResponseWriter, r *http.Request) {
	personID, ok := actingUser(w, r)
	if !ok {
		return
	}
	partyID, ok := pathID(w, r, "supplierPartyId")
	if !ok {
		return
	}

	var filterBU models.ID
	if raw := r.URL.Query().Get("bu_id"); raw != "" {
		if filterBU, ok = models.ParseID(raw); !ok {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "bu_id must be a positive integer"})
			return
		}
	}

	detail, err := h.svc.Suppliers.Get(r.Context(), personID, partyID, filterBU)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, detail)
}
