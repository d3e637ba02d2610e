package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ralungei/fusion-procurement/pkg/app"
	"github.com/ralungei/fusion-procurement/pkg/auth"
	"github.com/ralungei/fusion-procurement/services/procurement/application/handlers"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
)

// ProcurementRoutes registers procurement endpoints on the provided chi router.
// Every route runs as the acting user resolved by auth.ActingUser.
func ProcurementRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a), a)
}

// Mount registers the handlers over an already wired service container.
func Mount(r chi.Router, svcs *appsvcs.Services, a *app.Application) {
	r.Group(func(r chi.Router) {
		r.Use(auth.ActingUser(a.SessionStore, a.Config.FusionUserID, a.Logger))

		r.Post("/listings/search", handlers.NewSearchListingsHandler(svcs).Execute)

		r.Route("/suppliers/{supplierPartyId}", func(r chi.Router) {
			r.Get("/", handlers.NewGetSupplierHandler(svcs).Execute)
			r.Get("/ratings", handlers.NewGetSupplierRatingsHandler(svcs).Execute)
			r.Post("/ratings", handlers.NewPostSupplierRatingHandler(svcs).Execute)
		})

		r.Route("/requisitions", func(r chi.Router) {
			r.Post("/", handlers.NewPostRequisitionHandler(svcs).Execute)
			r.Get("/orphaned", handlers.NewGetOrphanedRequisitionsHandler(svcs).Execute)
		})
	})
}
