package services

import "github.com/ralungei/fusion-procurement/services/procurement/domain/models"

// DefaultSiteFallback is the number of sites kept when no address hint matches.
const DefaultSiteFallback = 3

// FilterSitesByScope keeps the sites whose procurement business unit is in scope.
func FilterSitesByScope(sites []models.SupplierSite, scope models.BusinessUnitSet) []models.SupplierSite {
	var out []models.SupplierSite
	for _, s := range sites {
		if scope.Contains(s.ProcurementBUID) {
			out = append(out, s)
		}
	}
	return out
}

// SelectSites picks the sites offered for one supplier association. Sites
// whose name equals addressHint win; otherwise the first three are kept in
// backend order.
func SelectSites(sites []models.SupplierSite, addressHint string) []models.SupplierSite {
	if addressHint != "" {
		var matched []models.SupplierSite
		for _, s := range sites {
			if s.SupplierSite == addressHint {
				matched = append(matched, s)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}
	if len(sites) > DefaultSiteFallback {
		return sites[:DefaultSiteFallback]
	}
	return sites
}

// BusinessUnitsOf returns the distinct procurement business units of sites in
// first-seen order.
func BusinessUnitsOf(sites []models.SupplierSite) []models.ID {
	seen := map[models.ID]bool{}
	var out []models.ID
	for _, s := range sites {
		if s.ProcurementBUID.Valid() && !seen[s.ProcurementBUID] {
			seen[s.ProcurementBUID] = true
			out = append(out, s.ProcurementBUID)
		}
	}
	return out
}
