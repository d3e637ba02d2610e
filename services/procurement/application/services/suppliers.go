package services

import (
	"context"

	"github.com/ralungei/fusion-procurement/pkg/fanout"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
	domainsvcs "github.com/ralungei/fusion-procurement/services/procurement/domain/services"
)

// SupplierJoin resolves the suppliers and sites through which an item can be
// bought within an access scope.
type SupplierJoin struct {
	catalog   repositories.Catalog
	suppliers repositories.SupplierDirectory
	enrich    *InventoryEnrichment
	width     int
	log       logger.Logger
}

// NewSupplierJoin wires a SupplierJoin.
func NewSupplierJoin(
	catalog repositories.Catalog,
	suppliers repositories.SupplierDirectory,
	enrich *InventoryEnrichment,
	width int,
	log logger.Logger,
) *SupplierJoin {
	return &SupplierJoin{catalog: catalog, suppliers: suppliers, enrich: enrich, width: width, log: log}
}

// ResolveForItems resolves every item concurrently, keyed by item identity.
func (j *SupplierJoin) ResolveForItems(ctx context.Context, items []models.Item, scope models.BusinessUnitSet) map[models.ItemKey][]models.ItemSupplier {
	results := fanout.Map(ctx, j.width, items, func(ctx context.Context, it models.Item) ([]models.ItemSupplier, error) {
		return j.ResolveForItem(ctx, it, scope), nil
	})
	out := make(map[models.ItemKey][]models.ItemSupplier, len(items))
	for i, r := range results {
		out[items[i].Key()] = r.Value
	}
	return out
}

// ResolveForItem returns the item's suppliers that have at least one site in
// scope. Every failure drops only the branch it happened in.
func (j *SupplierJoin) ResolveForItem(ctx context.Context, item models.Item, scope models.BusinessUnitSet) []models.ItemSupplier {
	self := item.SelfLink()
	if self == "" || scope.Empty() {
		return nil
	}

	assocs, err := j.catalog.ItemSuppliers(ctx, self)
	if err != nil {
		j.log.WarnContext(ctx, "item supplier associations lookup failed",
			"item_id", item.ItemID, "organization_id", item.OrganizationID, "error", err)
		return nil
	}

	results := fanout.Map(ctx, j.width, assocs, func(ctx context.Context, a models.SupplierAssociation) (*models.ItemSupplier, error) {
		return j.resolveAssociation(ctx, a, scope), nil
	})
	var out []models.ItemSupplier
	for _, r := range results {
		if r.Value != nil {
			out = append(out, *r.Value)
		}
	}
	return out
}

func (j *SupplierJoin) resolveAssociation(ctx context.Context, a models.SupplierAssociation, scope models.BusinessUnitSet) *models.ItemSupplier {
	partyID := a.PartyID()
	if !partyID.Valid() {
		return nil
	}

	rec, err := j.suppliers.ResolveSupplier(ctx, partyID)
	if err != nil {
		j.log.WarnContext(ctx, "supplier resolution failed", "supplier_party_id", partyID, "error", err)
		return nil
	}
	if rec == nil || !rec.SupplierID.Valid() {
		return nil
	}

	sites, err := j.suppliers.Sites(ctx, rec.SupplierID)
	if err != nil {
		j.log.WarnContext(ctx, "supplier sites lookup failed", "supplier_id", rec.SupplierID, "error", err)
		return nil
	}

	// Selection depends only on site names, so it runs before enrichment.
	sites = domainsvcs.SelectSites(domainsvcs.FilterSitesByScope(sites, scope), a.AddressName)
	if len(sites) == 0 {
		return nil
	}

	return &models.ItemSupplier{
		SupplierName:    a.SupplierName,
		SupplierPartyID: rec.SupplierPartyID,
		SupplierID:      rec.SupplierID,
		Sites:           j.enrich.Enrich(ctx, sites),
	}
}
