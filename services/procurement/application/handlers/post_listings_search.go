package handlers

import (
	"net/http"

	"github.com/ralungei/fusion-procurement/pkg/errhttp"
	"github.com/ralungei/fusion-procurement/pkg/httpx"
	pkgvalidator "github.com/ralungei/fusion-procurement/pkg/validator"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
)

// SearchListingsRequest is the request body for POST /api/listings/search.
type SearchListingsRequest struct {
	ProductQueryTerms Terms `json:"product_query_terms" validate:"required" swaggertype:"array,string" example:"brake pad"`
	Limit             int   `json:"limit" validate:"omitempty,min=1,max=100" example:"10"`
} // @name SearchListingsRequest

// SearchListingsHandler handles POST /api/listings/search requests.
type SearchListingsHandler struct {
	svc *appsvcs.Services
}

// NewSearchListingsHandler returns a SearchListingsHandler backed by the given services.
func NewSearchListingsHandler(svc *appsvcs.Services) *SearchListingsHandler {
	return &SearchListingsHandler{svc: svc}
}

// Execute searches the catalog and returns grouped, purchasable listings.
//
//	@Summary		Search product listings
//	@Description	Expands each term into case variants, searches the catalog and joins suppliers, sites and delivery locations within the acting user's business units
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchListingsRequest	true	"Search terms"
//	@Success		200		{object}	models.Listing
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/listings/search [post]
func (h *SearchListingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	personID, ok := actingUser(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SearchListingsRequest](w, r)
	if !ok {
		return
	}

	listing, err := h.svc.Listings.Find(r.Context(), personID, req.ProductQueryTerms, req.Limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, listing)
}
