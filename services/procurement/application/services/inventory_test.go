package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

func inventoryERP() *fakeERP {
	return &fakeERP{
		orgsForBU: func(bu models.ID) ([]models.InventoryOrganization, error) {
			switch bu {
			case 300:
				return []models.InventoryOrganization{
					{OrganizationID: 204, OrganizationName: "Seattle", InventoryFlag: true},
					{OrganizationID: 206, OrganizationName: "Vision", InventoryFlag: false},
					{OrganizationID: 207, OrganizationName: "Denver", InventoryFlag: true},
				}, nil
			case 400:
				return nil, errors.New("HTTP 503")
			}
			return nil, nil
		},
		orgDetail: func(org models.ID) (*models.InventoryOrganizationDetail, error) {
			switch org {
			case 204:
				return &models.InventoryOrganizationDetail{OrganizationID: 204, LocationID: 9001}, nil
			case 207:
				return nil, errors.New("timeout")
			}
			return nil, nil
		},
	}
}

func TestInventoryEnrichment_AttachesOrganizationsAndLocations(t *testing.T) {
	erp := inventoryERP()
	sites := []models.SupplierSite{
		{SupplierSite: "A", ProcurementBUID: 300},
		{SupplierSite: "B", ProcurementBUID: 300},
		{SupplierSite: "C", ProcurementBUID: 400},
	}

	got := NewInventoryEnrichment(erp, 4, logger.Nop()).Enrich(context.Background(), sites)

	require.Len(t, got, 3)
	assert.Len(t, got[0].InventoryOrganizations, 3)
	assert.Len(t, got[1].InventoryOrganizations, 3)
	assert.Empty(t, got[2].InventoryOrganizations, "failed business unit degrades to empty")

	loc, ok := got[0].Locations.Lookup(204)
	assert.True(t, ok)
	assert.Equal(t, models.ID(9001), loc)
	_, ok = got[0].Locations.Lookup(207)
	assert.False(t, ok, "failed detail degrades to no location")

	assert.Equal(t, 2, erp.called("OrganizationsForBusinessUnit"), "one lookup per distinct business unit")
	assert.Equal(t, 2, erp.called("OrganizationDetail"), "details only for inventory organizations")
	assert.Nil(t, sites[0].InventoryOrganizations, "input is not mutated")
}

func TestInventoryEnrichment_Empty(t *testing.T) {
	erp := inventoryERP()
	got := NewInventoryEnrichment(erp, 4, logger.Nop()).Enrich(context.Background(), nil)
	assert.Empty(t, got)
	assert.Zero(t, erp.called("OrganizationsForBusinessUnit"))
}
