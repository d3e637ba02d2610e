package services

import (
	"github.com/ralungei/fusion-procurement/pkg/app"
	"github.com/ralungei/fusion-procurement/pkg/cache"
	"github.com/ralungei/fusion-procurement/pkg/telemetry"
	"github.com/ralungei/fusion-procurement/services/procurement/infrastructure/erp"
	"github.com/ralungei/fusion-procurement/services/procurement/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
// The backend-facing services are nil when the Application has no Fusion client.
type Services struct {
	Listings     *Listings
	Suppliers    *SupplierDetails
	Requisitions *RequisitionWriter
	Ratings      *RatingService
	Orphans      *OrphanRegister
}

// New wires all procurement application services with infrastructure from
// the Application container.
func New(a *app.Application) *Services {
	log := a.Logger.With("context", "procurement")

	var summaries SummaryCache
	var keys IdempotencyKeys
	if a.Redis != nil {
		summaries = cache.NewRatingSummaryCache(a.Redis, a.Config.RatingCacheTTL)
		keys = cache.NewIdempotencyStore(a.Redis, a.Config.RequisitionIdempotencyTTL)
	}

	s := &Services{
		Ratings: NewRatingService(postgres.NewRatingRepository(a.Db, a.EventBus), summaries, log),
		Orphans: NewOrphanRegister(postgres.NewOrphanRepository(a.Db), log),
	}

	if a.Fusion == nil {
		return s
	}

	gw := erp.NewGateway(a.Fusion)
	width := a.Config.FanOutLimit
	scope := NewAccessScope(gw, log)
	enrich := NewInventoryEnrichment(gw, width, log)
	join := NewSupplierJoin(gw, gw, enrich, width, log)

	s.Listings = NewListings(scope, NewCatalogSearch(gw, width, log), join, log)
	s.Suppliers = NewSupplierDetails(gw, scope, enrich, log)

	opts := []RequisitionOption{WithErrorReporter(telemetry.CaptureError)}
	if keys != nil {
		opts = append(opts, WithIdempotencyKeys(keys))
	}
	if a.EventBus != nil {
		opts = append(opts, WithPublisher(a.EventBus))
	}
	s.Requisitions = NewRequisitionWriter(gw, log, opts...)
	return s
}
