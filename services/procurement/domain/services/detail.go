package services

import (
	"strings"

	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// BuildSupplierDetail assembles the supplier profile. Sites must already be
// filtered and enriched; filterBU is echoed when non-zero.
func BuildSupplierDetail(
	rec models.SupplierRecord,
	addresses []models.SupplierAddress,
	contacts []models.SupplierContact,
	sites []models.SupplierSite,
	filterBU models.ID,
) models.SupplierDetail {
	d := models.SupplierDetail{
		SupplierPartyID:      rec.SupplierPartyID,
		SupplierID:           rec.SupplierID,
		Name:                 rec.Supplier,
		SupplierNumber:       rec.SupplierNumber,
		Status:               rec.Status,
		BusinessRelationship: rec.BusinessRelationship,
		DUNSNumber:           rec.DUNSNumber,
		YearEstablished:      rec.YearEstablished,
		Country:              rec.TaxpayerCountry,
		AnnualRevenue:        rec.PotentialRevenue,
		FilteredByBU:         filterBU,
		Addresses:            []models.DetailAddress{},
		Contacts:             []models.DetailContact{},
		Sites:                []models.DetailSite{},
	}

	for _, a := range capSlice(addresses, models.MaxDetailAddresses) {
		d.Addresses = append(d.Addresses, models.DetailAddress{
			Name:  a.AddressName,
			Lines: nonEmpty(a.AddressLine1, a.City, a.State, a.PostalCode, a.Country),
		})
	}

	for _, c := range contacts {
		if len(d.Contacts) == models.MaxDetailContacts {
			break
		}
		if !c.Reachable() {
			continue
		}
		d.Contacts = append(d.Contacts, models.DetailContact{
			Name:     strings.TrimSpace(c.FirstName + " " + c.LastName),
			JobTitle: c.JobTitle,
			Email:    c.Email,
			Phone:    c.PhoneNumber,
		})
	}

	for _, s := range capSlice(sites, models.MaxDetailSites) {
		d.Sites = append(d.Sites, detailSite(s))
	}
	return d
}

func detailSite(s models.SupplierSite) models.DetailSite {
	status := "Active"
	if !s.Active() {
		status = "Inactive"
	}
	ds := models.DetailSite{
		SiteName:                 s.SupplierSite,
		BusinessUnit:             s.ProcurementBU,
		BusinessUnitID:           s.ProcurementBUID,
		Purposes:                 s.Purposes(true),
		Status:                   status,
		DestinationOrganizations: []models.DestinationOrgRef{},
	}
	for _, inv := range s.InventoryOrganizations {
		if !inv.InventoryFlag {
			continue
		}
		ref := models.DestinationOrgRef{
			OrganizationID:   inv.OrganizationID,
			OrganizationName: inv.OrganizationName,
			OrganizationCode: inv.OrganizationCode,
		}
		if loc, ok := s.Locations.Lookup(inv.OrganizationID); ok {
			ref.DeliverToLocationID = &loc
		}
		ds.DestinationOrganizations = append(ds.DestinationOrganizations, ref)
	}
	return ds
}

func nonEmpty(parts ...string) []string {
	out := []string{}
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
