package handlers

import (
	"net/http"

	"github.com/ralungei/fusion-procurement/pkg/errhttp"
	"github.com/ralungei/fusion-procurement/pkg/httpx"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
)

// OrphanedRequisitionsResponse is one page of the orphan register.
type OrphanedRequisitionsResponse struct {
	Items  []*models.OrphanedRequisition `json:"items"`
	Total  int                           `json:"total" example:"3"`
	Limit  int                           `json:"limit" example:"50"`
	Offset int                           `json:"offset" example:"0"`
} // @name OrphanedRequisitionsResponse

// GetOrphanedRequisitionsHandler handles GET /api/requisitions/orphaned requests.
type GetOrphanedRequisitionsHandler struct {
	svc *appsvcs.Services
}

// NewGetOrphanedRequisitionsHandler returns a GetOrphanedRequisitionsHandler backed by the given services.
func NewGetOrphanedRequisitionsHandler(svc *appsvcs.Services) *GetOrphanedRequisitionsHandler {
	return &GetOrphanedRequisitionsHandler{svc: svc}
}

// Execute lists requisition headers whose line creation failed.
//
//	@Summary		Orphaned requisitions
//	@Description	Lists headers left without a line, newest first
//	@Tags			requisitions
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 100)"
//	@Param			offset	query		int	false	"Offset"
//	@Success		200		{object}	OrphanedRequisitionsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/requisitions/orphaned [get]
func (h *GetOrphanedRequisitionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 50)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	opts := repositories.QueryOpts{Limit: limit, Offset: offset}
	if opts.Limit == 0 || opts.Limit > appsvcs.MaxOrphanPage {
		opts.Limit = appsvcs.MaxOrphanPage
	}

	orphans, total, err := h.svc.Orphans.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if orphans == nil {
		orphans = []*models.OrphanedRequisition{}
	}

	httpx.JSON(w, http.StatusOK, OrphanedRequisitionsResponse{
		Items:  orphans,
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	})
}
