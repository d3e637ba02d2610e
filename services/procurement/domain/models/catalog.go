package models

import "github.com/shopspring/decimal"

// Link is one entry of a resource's links array.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
	Name string `json:"name,omitempty"`
	Kind string `json:"kind,omitempty"`
}

// Links is a resource's links array.
type Links []Link

// Self returns the resource's own locator, or "" when absent.
func (l Links) Self() string {
	for _, link := range l {
		if link.Rel == "self" {
			return link.Href
		}
	}
	return ""
}

// Item is a catalog line scoped to one organization. ItemNumber is not
// unique across organizations; Key is the identity.
type Item struct {
	ItemID           ID                  `json:"ItemId"`
	OrganizationID   ID                  `json:"OrganizationId"`
	OrganizationCode string              `json:"OrganizationCode"`
	ItemNumber       string              `json:"ItemNumber"`
	ItemDescription  string              `json:"ItemDescription"`
	PrimaryUOMValue  string              `json:"PrimaryUOMValue"`
	ItemClass        string              `json:"ItemClass"`
	ItemStatusValue  string              `json:"ItemStatusValue"`
	PurchasableFlag  *bool               `json:"PurchasableFlag"`
	ListPrice        decimal.NullDecimal `json:"ListPrice"`
	Links            Links               `json:"links"`
}

// ItemKey identifies an item within one organization.
type ItemKey struct {
	ItemID         ID
	OrganizationID ID
}

// Key returns the item's identity.
func (i Item) Key() ItemKey {
	return ItemKey{ItemID: i.ItemID, OrganizationID: i.OrganizationID}
}

// SelfLink returns the item's resource locator, or "".
func (i Item) SelfLink() string {
	return i.Links.Self()
}
