package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ralungei/fusion-procurement/pkg/errhttp"
	"github.com/ralungei/fusion-procurement/pkg/httpx"
	pkgvalidator "github.com/ralungei/fusion-procurement/pkg/validator"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// CreateRatingRequest is the request body for POST /api/suppliers/{supplierPartyId}/ratings.
type CreateRatingRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment" validate:"max=1000" example:"Delivered on time"`
} // @name CreateRatingRequest

// CreateRatingResponse is returned when a rating is recorded.
type CreateRatingResponse struct {
	ID              uuid.UUID `json:"id"                example:"123e4567-e89b-12d3-a456-426614174000"`
	SupplierPartyID models.ID `json:"supplier_party_id" example:"300000047507499"`
	Score           int       `json:"score"             example:"4"`
	Comment         string    `json:"comment"           example:"Delivered on time"`
	RatedBy         models.ID `json:"rated_by"          example:"300000047340498"`
	CreatedAt       time.Time `json:"created_at"        example:"2026-10-17T10:30:00Z"`
} // @name CreateRatingResponse

// PostSupplierRatingHandler handles POST /api/suppliers/{supplierPartyId}/ratings requests.
type PostSupplierRatingHandler struct {
	svc *appsvcs.Services
}

// NewPostSupplierRatingHandler returns a PostSupplierRatingHandler backed by the given services.
func NewPostSupplierRatingHandler(svc *appsvcs.Services) *PostSupplierRatingHandler {
	return &PostSupplierRatingHandler{svc: svc}
}

// Execute records the acting user's rating of a supplier.
//
//	@Summary		Rate supplier
//	@Description	Records one rating per user and supplier
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Param			supplierPartyId	path		int					true	"Supplier party id"
//	@Param			request			body		CreateRatingRequest	true	"Rating"
//	@Success		201				{object}	CreateRatingResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		401				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Router			/api/suppliers/{supplierPartyId}/ratings [post]
func (h *PostSupplierRatingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	personID, ok := actingUser(w, r)
	if !ok {
		return
	}
	partyID, ok := pathID(w, r, "supplierPartyId")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateRatingRequest](w, r)
	if !ok {
		return
	}

	rating, err := h.svc.Ratings.Record(r.Context(), personID, partyID, req.Score, req.Comment)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreateRatingResponse{
		ID:              rating.ID,
		SupplierPartyID: rating.SupplierPartyID,
		Score:           rating.Score,
		Comment:         rating.Comment,
		RatedBy:         rating.RatedBy,
		CreatedAt:       rating.CreatedAt,
	})
}

// GetSupplierRatingsHandler handles GET /api/suppliers/{supplierPartyId}/ratings requests.
type GetSupplierRatingsHandler struct {
	svc *appsvcs.Services
}

// NewGetSupplierRatingsHandler returns a GetSupplierRatingsHandler backed by the given services.
func NewGetSupplierRatingsHandler(svc *appsvcs.Services) *GetSupplierRatingsHandler {
	return &GetSupplierRatingsHandler{svc: svc}
}

// Execute returns the supplier's rating summary.
//
//	@Summary		Supplier ratings
//	@Description	Returns the rating count, the average rounded to two decimals and the most recent ratings
//	@Tags			ratings
//	@Produce		json
//	@Param			supplierPartyId	path		int	true	"Supplier party id"
//	@Success		200				{object}	models.RatingSummary
//	@Failure		400				{object}	ErrorResponse
//	@Router			/api/suppliers/{supplierPartyId}/ratings [get]
func (h *GetSupplierRatingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	partyID, ok := pathID(w, r, "supplierPartyId")
	if !ok {
		return
	}

	summary, err := h.svc.Ratings.Summary(r.Context(), partyID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, summary)
}
