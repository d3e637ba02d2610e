package erp

import (
	"context"

	"github.com/ralungei/fusion-procurement/pkg/fusion"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// OrganizationsForBusinessUnit lists the organizations managed by bu.
func (g *Gateway) OrganizationsForBusinessUnit(ctx context.Context, bu models.ID) ([]models.InventoryOrganization, error) {
	path := fusion.Query{Filter: fusion.EqID("ManagementBusinessUnitId", int64(bu))}.Path(inventoryOrgsPath)
	return getList[models.InventoryOrganization](ctx, g.client, path, fusion.TierRead)
}

// OrganizationDetail reads one organization. A 404 is reported as nil.
func (g *Gateway) OrganizationDetail(ctx context.Context, orgID models.ID) (*models.InventoryOrganizationDetail, error) {
	d, err := getOne[models.InventoryOrganizationDetail](ctx, g.client, idPath(inventoryOrgsPath, orgID), fusion.TierRead)
	if isNotFound(err) {
		return nil, nil
	}
	return d, err
}
