package erp

import (
	"context"

	"github.com/ralungei/fusion-procurement/pkg/fusion"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// ResolveSupplier finds the supplier by public party id with an exact match.
func (g *Gateway) ResolveSupplier(ctx context.Context, partyID models.ID) (*models.SupplierRecord, error) {
	path := fusion.Query{Filter: fusion.Eq("SupplierPartyId", partyID.String())}.Path(suppliersPath)
	recs, err := getList[models.SupplierRecord](ctx, g.client, path, fusion.TierRead)
	if err != nil {
		return nil, err
	}
	return first(recs), nil
}

// Supplier reads the supplier by internal id.
func (g *Gateway) Supplier(ctx context.Context, supplierID models.ID) (*models.SupplierRecord, error) {
	return getOne[models.SupplierRecord](ctx, g.client, idPath(suppliersPath, supplierID), fusion.TierRead)
}

// Sites lists the supplier's sites.
func (g *Gateway) Sites(ctx context.Context, supplierID models.ID) ([]models.SupplierSite, error) {
	return getList[models.SupplierSite](ctx, g.client, idPath(suppliersPath, supplierID)+"/child/sites", fusion.TierRead)
}

// Addresses lists the supplier's addresses.
func (g *Gateway) Addresses(ctx context.Context, supplierID models.ID) ([]models.SupplierAddress, error) {
	return getList[models.SupplierAddress](ctx, g.client, idPath(suppliersPath, supplierID)+"/child/addresses", fusion.TierRead)
}

// Contacts lists the supplier's contacts.
func (g *Gateway) Contacts(ctx context.Context, supplierID models.ID) ([]models.SupplierContact, error) {
	return getList[models.SupplierContact](ctx, g.client, idPath(suppliersPath, supplierID)+"/child/contacts", fusion.TierRead)
}
