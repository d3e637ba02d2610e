package models

import "github.com/shopspring/decimal"

// SupplierAssociation is one row of an item's ItemSupplierAssociation child.
//
// The backend names the column SupplierId but fills it with the supplier's
// public party id. PartyID hides that: it prefers an explicit SupplierPartyId
// and falls back to SupplierId. The value is always resolved through the
// suppliers collection before any site lookup.
type SupplierAssociation struct {
	SupplierID      ID     `json:"SupplierId"`
	SupplierPartyID ID     `json:"SupplierPartyId"`
	SupplierName    string `json:"SupplierName"`
	AddressName     string `json:"AddressName"`
}

// PartyID returns the public identifier to resolve.
func (a SupplierAssociation) PartyID() ID {
	if a.SupplierPartyID.Valid() {
		return a.SupplierPartyID
	}
	return a.SupplierID
}

// SupplierRecord is a row of the suppliers collection. SupplierID is the
// internal id required by child resources; SupplierPartyID is public.
type SupplierRecord struct {
	SupplierID           ID                  `json:"SupplierId"`
	SupplierPartyID      ID                  `json:"SupplierPartyId"`
	Supplier             string              `json:"Supplier"`
	SupplierNumber       string              `json:"SupplierNumber"`
	Status               string              `json:"Status"`
	BusinessRelationship string              `json:"BusinessRelationship"`
	DUNSNumber           string              `json:"DUNSNumber"`
	YearEstablished      ID                  `json:"YearEstablished"`
	TaxpayerCountry      string              `json:"TaxpayerCountry"`
	PotentialRevenue     decimal.NullDecimal `json:"CurrentFiscalYearPotentialRevenue"`
}

// SupplierSite is a supplier location bound to one procurement business unit.
// InventoryOrganizations and Locations are filled by enrichment and are empty
// when the corresponding lookups returned nothing.
type SupplierSite struct {
	SupplierSiteID  ID      `json:"SupplierSiteId"`
	SupplierSite    string  `json:"SupplierSite"`
	ProcurementBUID ID      `json:"ProcurementBUId"`
	ProcurementBU   string  `json:"ProcurementBU"`
	PurchasingFlag  bool    `json:"SitePurposePurchasingFlag"`
	PayFlag         bool    `json:"SitePurposePayFlag"`
	PrimaryPayFlag  bool    `json:"SitePurposePrimaryPayFlag"`
	InactiveDate    *string `json:"InactiveDate"`

	InventoryOrganizations []InventoryOrganization `json:"-"`
	Locations              LocationIndex           `json:"-"`
}

// Active reports whether the site has no inactive date.
func (s SupplierSite) Active() bool {
	return s.InactiveDate == nil || *s.InactiveDate == ""
}

// Purposes lists the site's purpose labels. withPrimaryPay adds "Primary Pay".
func (s SupplierSite) Purposes(withPrimaryPay bool) []string {
	out := []string{}
	if s.PurchasingFlag {
		out = append(out, "Purchasing")
	}
	if s.PayFlag {
		out = append(out, "Payment")
	}
	if withPrimaryPay && s.PrimaryPayFlag {
		out = append(out, "Primary Pay")
	}
	return out
}

// ItemSupplier is a supplier resolved for one item, carrying only the sites
// the caller may use.
type ItemSupplier struct {
	SupplierName    string
	SupplierPartyID ID
	SupplierID      ID
	Sites           []SupplierSite
}

// SupplierAddress is a row of a supplier's addresses child.
type SupplierAddress struct {
	AddressName  string `json:"AddressName"`
	AddressLine1 string `json:"AddressLine1"`
	City         string `json:"City"`
	State        string `json:"State"`
	PostalCode   string `json:"PostalCode"`
	Country      string `json:"Country"`
}

// SupplierContact is a row of a supplier's contacts child.
type SupplierContact struct {
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Email       string `json:"Email"`
	PhoneNumber string `json:"PhoneNumber"`
	JobTitle    string `json:"JobTitle"`
}

// Reachable reports whether the contact has an email or a phone number.
func (c SupplierContact) Reachable() bool {
	return c.Email != "" || c.PhoneNumber != ""
}
