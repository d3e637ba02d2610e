package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

func TestBuildSupplierDetail(t *testing.T) {
	inactive := "2024-01-01"
	rec := models.SupplierRecord{SupplierID: 3001, SupplierPartyID: 77, Supplier: "Acme", SupplierNumber: "1252", Status: "ACTIVE"}

	addresses := make([]models.SupplierAddress, 40)
	for i := range addresses {
		addresses[i] = models.SupplierAddress{AddressName: "HQ", AddressLine1: "1 Main St", City: "Austin", Country: "US"}
	}
	contacts := []models.SupplierContact{
		{FirstName: "No", LastName: "Channel"},
		{FirstName: "Jane", LastName: "Doe", Email: "jane@acme.test"},
		{FirstName: "Bob", PhoneNumber: "555"},
	}
	sites := []models.SupplierSite{
		enrichedSite("NYC", 300, []models.InventoryOrganization{orgM1, orgV1}, models.LocationIndex{204: 9001}),
		{SupplierSite: "OLD", ProcurementBUID: 300, PrimaryPayFlag: true, InactiveDate: &inactive,
			InventoryOrganizations: []models.InventoryOrganization{orgM2}},
	}

	d := BuildSupplierDetail(rec, addresses, contacts, sites, 300)

	assert.Equal(t, models.ID(77), d.SupplierPartyID)
	assert.Equal(t, models.ID(300), d.FilteredByBU)
	assert.Len(t, d.Addresses, models.MaxDetailAddresses)
	assert.Equal(t, []string{"1 Main St", "Austin", "US"}, d.Addresses[0].Lines)

	require.Len(t, d.Contacts, 2, "unreachable contacts are skipped")
	assert.Equal(t, "Jane Doe", d.Contacts[0].Name)
	assert.Equal(t, "Bob", d.Contacts[1].Name)

	require.Len(t, d.Sites, 2)
	assert.Equal(t, "Active", d.Sites[0].Status)
	require.Len(t, d.Sites[0].DestinationOrganizations, 1, "only inventory organizations are listed")
	require.NotNil(t, d.Sites[0].DestinationOrganizations[0].DeliverToLocationID)
	assert.Equal(t, models.ID(9001), *d.Sites[0].DestinationOrganizations[0].DeliverToLocationID)

	assert.Equal(t, "Inactive", d.Sites[1].Status)
	assert.Equal(t, []string{"Primary Pay"}, d.Sites[1].Purposes)
	require.Len(t, d.Sites[1].DestinationOrganizations, 1)
	assert.Nil(t, d.Sites[1].DestinationOrganizations[0].DeliverToLocationID)
}

func TestBuildSupplierDetail_CapsContactsAndSites(t *testing.T) {
	contacts := make([]models.SupplierContact, 8)
	for i := range contacts {
		contacts[i] = models.SupplierContact{Email: "x@acme.test"}
	}
	sites := make([]models.SupplierSite, 8)

	d := BuildSupplierDetail(models.SupplierRecord{}, nil, contacts, sites, 0)

	assert.Len(t, d.Contacts, models.MaxDetailContacts)
	assert.Len(t, d.Sites, models.MaxDetailSites)
	assert.NotNil(t, d.Addresses)
}
