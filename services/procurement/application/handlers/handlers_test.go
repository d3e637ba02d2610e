package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralungei/fusion-procurement/pkg/app"
	"github.com/ralungei/fusion-procurement/pkg/config"
	"github.com/ralungei/fusion-procurement/pkg/fusion"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/application/api"
	"github.com/ralungei/fusion-procurement/services/procurement/application/handlers"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
)

const self = "https://erp.example.com/fscmRestApi/resources/11.13.18.05/itemsV2/0002/child/ItemSupplierAssociation"

// backend is a small in-memory ERP. Items numbered "BP-*" exist in
// organization 204 and are supplied by party 7001 through site NYC in
// business unit 300.
type backend struct {
	searchErr error
	lineErr   error
}

func (b *backend) FindWorker(context.Context, models.ID) (*models.Worker, error) {
	return &models.Worker{WorkRelationships: []models.WorkRelationship{{Assignments: []models.Assignment{{BusinessUnitID: 300}}}}}, nil
}

func (b *backend) SearchItems(_ context.Context, prefix string, _ int) ([]models.Item, error) {
	if b.searchErr != nil {
		return nil, b.searchErr
	}
	if !strings.HasPrefix("BP-100", prefix) {
		return nil, nil
	}
	return []models.Item{{ItemID: 1, OrganizationID: 204, OrganizationCode: "M1", ItemNumber: "BP-100", Links: models.Links{{Rel: "self", Href: self}}}}, nil
}

func (b *backend) ItemSuppliers(context.Context, string) ([]models.SupplierAssociation, error) {
	return []models.SupplierAssociation{{SupplierID: 7001, SupplierName: "Acme Parts", AddressName: "NYC"}}, nil
}

func (b *backend) OrganizationsForBusinessUnit(context.Context, models.ID) ([]models.InventoryOrganization, error) {
	return []models.InventoryOrganization{{OrganizationID: 204, OrganizationCode: "M1", OrganizationName: "Seattle", InventoryFlag: true}}, nil
}

func (b *backend) OrganizationDetail(_ context.Context, org models.ID) (*models.InventoryOrganizationDetail, error) {
	return &models.InventoryOrganizationDetail{OrganizationID: org, LocationID: 9001}, nil
}

func (b *backend) ResolveSupplier(_ context.Context, party models.ID) (*models.SupplierRecord, error) {
	if party != 7001 {
		return nil, nil
	}
	return &models.SupplierRecord{SupplierID: 1, SupplierPartyID: 7001, Supplier: "Acme Parts"}, nil
}

func (b *backend) Supplier(_ context.Context, id models.ID) (*models.SupplierRecord, error) {
	return &models.SupplierRecord{SupplierID: id, SupplierPartyID: 7001, Supplier: "Acme Parts"}, nil
}

func (b *backend) Sites(context.Context, models.ID) ([]models.SupplierSite, error) {
	return []models.SupplierSite{
		{SupplierSite: "NYC", ProcurementBUID: 300, PurchasingFlag: true},
		{SupplierSite: "DEN", ProcurementBUID: 400, PurchasingFlag: true},
	}, nil
}

func (b *backend) Addresses(context.Context, models.ID) ([]models.SupplierAddress, error) {
	return nil, nil
}

func (b *backend) Contacts(context.Context, models.ID) ([]models.SupplierContact, error) {
	return nil, nil
}

func (b *backend) CreateHeader(context.Context, models.RequisitionHeaderPayload) (*models.RequisitionHeader, error) {
	return &models.RequisitionHeader{RequisitionHeaderID: 500, Requisition: "REQ-500"}, nil
}

func (b *backend) CreateLine(_ context.Context, _ models.ID, p models.RequisitionLinePayload) (*models.RequisitionLine, error) {
	if b.lineErr != nil {
		return nil, b.lineErr
	}
	return &models.RequisitionLine{RequisitionLineID: 600, LineNumber: p.LineNumber, ItemID: p.ItemID, Quantity: p.Quantity}, nil
}

type ratings struct {
	saved []*models.Rating
}

func (r *ratings) Save(_ context.Context, rating *models.Rating) error {
	for _, s := range r.saved {
		if s.SupplierPartyID == rating.SupplierPartyID && s.RatedBy == rating.RatedBy {
			return domain.ErrRatingAlreadyExists
		}
	}
	r.saved = append(r.saved, rating)
	return nil
}

func (r *ratings) Summary(_ context.Context, id models.ID, _ int) (*models.RatingSummary, error) {
	return &models.RatingSummary{SupplierPartyID: id, Count: int64(len(r.saved)), Recent: []models.RatingView{}}, nil
}

type orphans struct{}

func (orphans) Record(context.Context, *models.OrphanedRequisition) (bool, error) { return true, nil }

func (orphans) List(_ context.Context, opts repositories.QueryOpts) ([]*models.OrphanedRequisition, int, error) {
	return []*models.OrphanedRequisition{{RequisitionHeaderID: 500, ItemID: 1001}}, 1, nil
}

type keys struct{ held map[string]bool }

func (k *keys) Reserve(_ context.Context, key string) (bool, error) {
	if k.held[key] {
		return false, nil
	}
	k.held[key] = true
	return true, nil
}
func (k *keys) Complete(context.Context, string, int64) error { return nil }
func (k *keys) Release(_ context.Context, key string) error {
	delete(k.held, key)
	return nil
}

func newRouter(t *testing.T, b *backend, userID int64) http.Handler {
	t.Helper()
	log := logger.Nop()
	scope := appsvcs.NewAccessScope(b, log)
	enrich := appsvcs.NewInventoryEnrichment(b, 4, log)
	svcs := &appsvcs.Services{
		Listings:     appsvcs.NewListings(scope, appsvcs.NewCatalogSearch(b, 4, log), appsvcs.NewSupplierJoin(b, b, enrich, 4, log), log),
		Suppliers:    appsvcs.NewSupplierDetails(b, scope, enrich, log),
		Requisitions: appsvcs.NewRequisitionWriter(b, log, appsvcs.WithIdempotencyKeys(&keys{held: map[string]bool{}})),
		Ratings:      appsvcs.NewRatingService(&ratings{}, nil, log),
		Orphans:      appsvcs.NewOrphanRegister(orphans{}, log),
	}
	r := chi.NewRouter()
	api.Mount(r, svcs, &app.Application{Config: &config.Config{FusionUserID: userID}, Logger: log})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	var out map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	return rr, out
}

func TestSearchListings(t *testing.T) {
	h := newRouter(t, &backend{}, 42)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResult string
	}{
		{"single term", `{"product_query_terms":"BP"}`, http.StatusOK, "ok"},
		{"term list", `{"product_query_terms":["zzz","bp"],"limit":5}`, http.StatusOK, "ok"},
		{"no matches", `{"product_query_terms":"zzz"}`, http.StatusOK, "no_results"},
		{"missing terms", `{"limit":5}`, http.StatusUnprocessableEntity, ""},
		{"blank terms", `{"product_query_terms":["  "]}`, http.StatusUnprocessableEntity, ""},
		{"limit too large", `{"product_query_terms":"BP","limit":101}`, http.StatusUnprocessableEntity, ""},
		{"wrong term type", `{"product_query_terms":7}`, http.StatusBadRequest, ""},
		{"malformed json", `{`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := do(t, h, http.MethodPost, "/listings/search", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantResult != "" {
				assert.Equal(t, tt.wantResult, body["status"])
			}
		})
	}
}

func TestSearchListings_BackendFailure(t *testing.T) {
	h := newRouter(t, &backend{searchErr: errors.New("HTTP 500")}, 42)

	rr, body := do(t, h, http.MethodPost, "/listings/search", `{"product_query_terms":"BP"}`)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, body["error"], "Query 0")
}

func TestRoutes_RequireActingUser(t *testing.T) {
	h := newRouter(t, &backend{}, 0)

	rr, _ := do(t, h, http.MethodPost, "/listings/search", `{"product_query_terms":"BP"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetSupplier(t *testing.T) {
	h := newRouter(t, &backend{}, 42)

	rr, body := do(t, h, http.MethodGet, "/suppliers/7001", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Acme Parts", body["name"])
	assert.Len(t, body["sites"], 1)

	rr, body = do(t, h, http.MethodGet, "/suppliers/7001?bu_id=400", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, body["sites"], "business unit 400 is outside the caller's scope")

	rr, _ = do(t, h, http.MethodGet, "/suppliers/1234", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = do(t, h, http.MethodGet, "/suppliers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr, _ = do(t, h, http.MethodGet, "/suppliers/7001?bu_id=-1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSupplierRatings(t *testing.T) {
	h := newRouter(t, &backend{}, 42)

	rr, body := do(t, h, http.MethodPost, "/suppliers/7001/ratings", `{"score":4,"comment":"on time"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, float64(4), body["score"])
	assert.Equal(t, float64(42), body["rated_by"])

	rr, _ = do(t, h, http.MethodPost, "/suppliers/7001/ratings", `{"score":5}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr, _ = do(t, h, http.MethodPost, "/suppliers/7001/ratings", `{"score":9}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr, body = do(t, h, http.MethodGet, "/suppliers/7001/ratings", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(1), body["count"])
}

const requisitionBody = `{
	"item_id": 1001,
	"quantity": 5,
	"business_unit_id": 300,
	"destination_organization_id": 204,
	"deliver_to_location_id": 9001
}`

func TestPostRequisition_Created(t *testing.T) {
	h := newRouter(t, &backend{}, 42)

	rr, body := do(t, h, http.MethodPost, "/requisitions", requisitionBody, handlers.IdempotencyKeyHeader, "k-1")

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "created", body["status"])
	assert.Equal(t, float64(500), body["requisition_header_id"])
	assert.Equal(t, "REQ-500", body["requisition"])

	rr, _ = do(t, h, http.MethodPost, "/requisitions", requisitionBody, handlers.IdempotencyKeyHeader, "k-1")
	assert.Equal(t, http.StatusConflict, rr.Code, "a reused key is rejected")
}

func TestPostRequisition_PartialFailure(t *testing.T) {
	h := newRouter(t, &backend{lineErr: &fusion.Failure{
		StatusCode: 400,
		Payload:    json.RawMessage(`{"detail":"Invalid ItemId"}`),
		Message:    `{"detail":"Invalid ItemId"}`,
	}}, 42)

	rr, body := do(t, h, http.MethodPost, "/requisitions", requisitionBody)

	require.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "partial_failure", body["status"])
	assert.Equal(t, float64(500), body["requisition_header_id"])
	assert.Equal(t, float64(400), body["backend_status"])
	assert.Equal(t, map[string]any{"detail": "Invalid ItemId"}, body["detail"])
}

func TestPostRequisition_Validation(t *testing.T) {
	h := newRouter(t, &backend{}, 42)

	rr, body := do(t, h, http.MethodPost, "/requisitions", `{"item_id":1001,"quantity":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, body["fields"], "quantity")

	rr, _ = do(t, h, http.MethodPost, "/requisitions", strings.Replace(requisitionBody, "}", `,"requested_delivery_date":"24/10/2026"}`, 1))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGetOrphanedRequisitions(t *testing.T) {
	h := newRouter(t, &backend{}, 42)

	rr, body := do(t, h, http.MethodGet, "/requisitions/orphaned?limit=500", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, float64(appsvcs.MaxOrphanPage), body["limit"])
	assert.Len(t, body["items"], 1)

	rr, _ = do(t, h, http.MethodGet, "/requisitions/orphaned?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
