package services

import (
	"context"

	"github.com/ralungei/fusion-procurement/pkg/fanout"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
	domainsvcs "github.com/ralungei/fusion-procurement/services/procurement/domain/services"
)

// InventoryEnrichment attaches inventory organizations and deliver-to
// locations to supplier sites.
type InventoryEnrichment struct {
	inventory repositories.InventoryDirectory
	width     int
	log       logger.Logger
}

// NewInventoryEnrichment returns an InventoryEnrichment running at most
// width lookups at once per batch.
func NewInventoryEnrichment(inventory repositories.InventoryDirectory, width int, log logger.Logger) *InventoryEnrichment {
	return &InventoryEnrichment{inventory: inventory, width: width, log: log}
}

// Enrich returns copies of sites with InventoryOrganizations set to their
// business unit's organizations and Locations set to the location of every
// inventory organization found. It never fails: a failed lookup leaves the
// corresponding field empty.
func (e *InventoryEnrichment) Enrich(ctx context.Context, sites []models.SupplierSite) []models.SupplierSite {
	if len(sites) == 0 {
		return sites
	}

	bus := domainsvcs.BusinessUnitsOf(sites)
	orgResults := fanout.Map(ctx, e.width, bus, func(ctx context.Context, bu models.ID) ([]models.InventoryOrganization, error) {
		return e.inventory.OrganizationsForBusinessUnit(ctx, bu)
	})

	orgsByBU := make(map[models.ID][]models.InventoryOrganization, len(bus))
	var flagged []models.ID
	seen := map[models.ID]bool{}
	for i, r := range orgResults {
		if r.Err != nil {
			e.log.WarnContext(ctx, "inventory organizations lookup failed", "business_unit_id", bus[i], "error", r.Err)
			continue
		}
		orgsByBU[bus[i]] = r.Value
		for _, org := range r.Value {
			if org.InventoryFlag && org.OrganizationID.Valid() && !seen[org.OrganizationID] {
				seen[org.OrganizationID] = true
				flagged = append(flagged, org.OrganizationID)
			}
		}
	}

	detailResults := fanout.Map(ctx, e.width, flagged, func(ctx context.Context, org models.ID) (*models.InventoryOrganizationDetail, error) {
		return e.inventory.OrganizationDetail(ctx, org)
	})
	locations := make(models.LocationIndex, len(flagged))
	for i, r := range detailResults {
		if r.Err != nil {
			e.log.WarnContext(ctx, "inventory organization detail lookup failed", "organization_id", flagged[i], "error", r.Err)
			continue
		}
		if r.Value != nil && r.Value.LocationID.Valid() {
			locations[flagged[i]] = r.Value.LocationID
		}
	}

	out := make([]models.SupplierSite, len(sites))
	for i, site := range sites {
		site.InventoryOrganizations = orgsByBU[site.ProcurementBUID]
		site.Locations = locations
		out[i] = site
	}
	return out
}
