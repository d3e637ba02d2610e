package models

import "github.com/shopspring/decimal"

// Projection caps applied to every grouped product.
const (
	MaxSuppliersPerOrganization = 2
	MaxSitesPerSupplier         = 2
	MaxDeliveryLocationsPerSite = 3
)

// GroupedProduct is one item number across every organization it is
// purchasable in.
type GroupedProduct struct {
	ItemName      string                `json:"item_name"`
	ItemID        ID                    `json:"item_id"`
	Description   string                `json:"description"`
	PrimaryUOM    string                `json:"primary_uom"`
	ItemClass     string                `json:"item_class"`
	Status        string                `json:"status"`
	Purchasable   *bool                 `json:"purchasable"`
	Organizations []ProductOrganization `json:"organizations"`
}

// ProductOrganization is the item's offer in one destination organization.
type ProductOrganization struct {
	OrganizationCode          string              `json:"organization_code"`
	OrganizationName          string              `json:"organization_name"`
	ProcurementBUID           ID                  `json:"procurement_bu_id,omitempty"`
	ProcurementBUName         string              `json:"procurement_bu_name,omitempty"`
	DestinationOrganizationID ID                  `json:"destination_organization_id"`
	ListPrice                 decimal.NullDecimal `json:"list_price"`
	Suppliers                 []ProductSupplier   `json:"suppliers"`
}

// ProductSupplier is a supplier able to ship the item to the organization.
type ProductSupplier struct {
	SupplierName    string        `json:"supplier_name"`
	SupplierPartyID ID            `json:"supplier_party_id"`
	Sites           []ProductSite `json:"sites"`
}

// ProductSite is a supplier site with the locations it can deliver to.
type ProductSite struct {
	SiteName          string             `json:"site_name"`
	BusinessUnit      string             `json:"business_unit"`
	SitePurpose       []string           `json:"site_purpose"`
	DeliveryLocations []DeliveryLocation `json:"delivery_locations"`
}

// DeliveryLocation is a deliver-to location usable in a requisition line.
type DeliveryLocation struct {
	OrganizationID      ID     `json:"organization_id"`
	OrganizationName    string `json:"organization_name"`
	DeliverToLocationID ID     `json:"deliver_to_location_id"`
}

// ListingStatus tells "found nothing" apart from "found items that cannot
// be procured here".
type ListingStatus string

const (
	ListingOK               ListingStatus = "ok"
	ListingNoResults        ListingStatus = "no_results"
	ListingNoInventoryMatch ListingStatus = "no_inventory_match"
)

// Listing is the result of a product search.
type Listing struct {
	Status   ListingStatus    `json:"status"`
	Terms    []string         `json:"terms"`
	Queries  int              `json:"queries"`
	Items    int              `json:"items_matched"`
	Products []GroupedProduct `json:"products"`
}
