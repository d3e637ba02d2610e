package models

import "github.com/shopspring/decimal"

// Supplier detail caps.
const (
	MaxDetailAddresses = 35
	MaxDetailContacts  = 5
	MaxDetailSites     = 5
)

// SupplierDetail is the full profile of one supplier.
type SupplierDetail struct {
	SupplierPartyID      ID                  `json:"supplier_party_id"`
	SupplierID           ID                  `json:"supplier_id"`
	Name                 string              `json:"name"`
	SupplierNumber       string              `json:"supplier_number"`
	Status               string              `json:"status"`
	BusinessRelationship string              `json:"business_relationship"`
	DUNSNumber           string              `json:"duns_number,omitempty"`
	YearEstablished      ID                  `json:"year_established,omitempty"`
	Country              string              `json:"country,omitempty"`
	AnnualRevenue        decimal.NullDecimal `json:"annual_revenue"`
	FilteredByBU         ID                  `json:"filtered_by_business_unit,omitempty"`
	Addresses            []DetailAddress     `json:"addresses"`
	Contacts             []DetailContact     `json:"contacts"`
	Sites                []DetailSite        `json:"sites"`
}

// DetailAddress is a formatted supplier address.
type DetailAddress struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// DetailContact is a supplier contact reachable by email or phone.
type DetailContact struct {
	Name     string `json:"name"`
	JobTitle string `json:"job_title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// DetailSite is a supplier site with its destination organizations.
type DetailSite struct {
	SiteName                 string              `json:"site_name"`
	BusinessUnit             string              `json:"business_unit"`
	BusinessUnitID           ID                  `json:"business_unit_id"`
	Purposes                 []string            `json:"purposes"`
	Status                   string              `json:"status"`
	DestinationOrganizations []DestinationOrgRef `json:"destination_organizations"`
}

// DestinationOrgRef is an inventory organization reachable from a site.
// DeliverToLocationID is nil when the organization has no default location.
type DestinationOrgRef struct {
	OrganizationID      ID     `json:"organization_id"`
	OrganizationName    string `json:"organization_name"`
	OrganizationCode    string `json:"organization_code"`
	DeliverToLocationID *ID    `json:"deliver_to_location_id"`
}
