package services

import "github.com/ralungei/fusion-procurement/services/procurement/domain/models"

// Project groups items by item number, in first-appearance order, and builds
// one organization entry per item whose organization is an inventory
// organization reachable through the item's resolved suppliers. Items without
// such a match are dropped, and so are products left with no organizations.
func Project(items []models.Item, suppliers map[models.ItemKey][]models.ItemSupplier) []models.GroupedProduct {
	var order []string
	groups := map[string][]models.Item{}
	for _, it := range items {
		if _, ok := groups[it.ItemNumber]; !ok {
			order = append(order, it.ItemNumber)
		}
		groups[it.ItemNumber] = append(groups[it.ItemNumber], it)
	}

	products := make([]models.GroupedProduct, 0, len(order))
	for _, number := range order {
		if p, ok := projectProduct(number, groups[number], suppliers); ok {
			products = append(products, p)
		}
	}
	return products
}

func projectProduct(number string, items []models.Item, suppliers map[models.ItemKey][]models.ItemSupplier) (models.GroupedProduct, bool) {
	first := items[0]
	p := models.GroupedProduct{
		ItemName:      number,
		ItemID:        first.ItemID,
		Description:   first.ItemDescription,
		PrimaryUOM:    first.PrimaryUOMValue,
		ItemClass:     first.ItemClass,
		Status:        first.ItemStatusValue,
		Purchasable:   first.PurchasableFlag,
		Organizations: []models.ProductOrganization{},
	}
	for _, it := range items {
		if org, ok := projectOrganization(it, suppliers[it.Key()]); ok {
			p.Organizations = append(p.Organizations, org)
		}
	}
	return p, len(p.Organizations) > 0
}

func projectOrganization(it models.Item, suppliers []models.ItemSupplier) (models.ProductOrganization, bool) {
	inv, ok := findInventoryOrganization(it.OrganizationID, suppliers)
	if !ok {
		return models.ProductOrganization{}, false
	}

	org := models.ProductOrganization{
		OrganizationCode:          it.OrganizationCode,
		OrganizationName:          inv.OrganizationName,
		DestinationOrganizationID: it.OrganizationID,
		ListPrice:                 it.ListPrice,
		Suppliers:                 []models.ProductSupplier{},
	}
	if site, ok := firstSiteWithBusinessUnit(suppliers); ok {
		org.ProcurementBUID = site.ProcurementBUID
		org.ProcurementBUName = site.ProcurementBU
	}

	for _, sup := range capSlice(suppliers, models.MaxSuppliersPerOrganization) {
		ps := models.ProductSupplier{
			SupplierName:    sup.SupplierName,
			SupplierPartyID: sup.SupplierPartyID,
			Sites:           []models.ProductSite{},
		}
		for _, site := range capSlice(sup.Sites, models.MaxSitesPerSupplier) {
			ps.Sites = append(ps.Sites, models.ProductSite{
				SiteName:          site.SupplierSite,
				BusinessUnit:      site.ProcurementBU,
				SitePurpose:       site.Purposes(false),
				DeliveryLocations: deliveryLocations(site, it.OrganizationID),
			})
		}
		org.Suppliers = append(org.Suppliers, ps)
	}
	return org, true
}

// findInventoryOrganization looks for an inventory-flagged organization with
// id orgID among the enrichment of every supplier site.
func findInventoryOrganization(orgID models.ID, suppliers []models.ItemSupplier) (models.InventoryOrganization, bool) {
	for _, sup := range suppliers {
		for _, site := range sup.Sites {
			for _, inv := range site.InventoryOrganizations {
				if inv.OrganizationID == orgID && inv.InventoryFlag {
					return inv, true
				}
			}
		}
	}
	return models.InventoryOrganization{}, false
}

func firstSiteWithBusinessUnit(suppliers []models.ItemSupplier) (models.SupplierSite, bool) {
	for _, sup := range suppliers {
		for _, site := range sup.Sites {
			if site.ProcurementBUID.Valid() {
				return site, true
			}
		}
	}
	return models.SupplierSite{}, false
}

// deliveryLocations prefers the destination organization's own location and
// falls back to every inventory organization of the site's business unit.
func deliveryLocations(site models.SupplierSite, destination models.ID) []models.DeliveryLocation {
	out := collectLocations(site, func(inv models.InventoryOrganization) bool {
		return inv.OrganizationID == destination
	})
	if len(out) == 0 {
		out = collectLocations(site, func(models.InventoryOrganization) bool { return true })
	}
	return capSlice(out, models.MaxDeliveryLocationsPerSite)
}

func collectLocations(site models.SupplierSite, keep func(models.InventoryOrganization) bool) []models.DeliveryLocation {
	out := []models.DeliveryLocation{}
	for _, inv := range site.InventoryOrganizations {
		if !inv.InventoryFlag || !keep(inv) {
			continue
		}
		loc, ok := site.Locations.Lookup(inv.OrganizationID)
		if !ok {
			continue
		}
		out = append(out, models.DeliveryLocation{
			OrganizationID:      inv.OrganizationID,
			OrganizationName:    inv.OrganizationName,
			DeliverToLocationID: loc,
		})
	}
	return out
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
