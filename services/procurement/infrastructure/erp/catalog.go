package erp

import (
	"context"
	"strings"

	"github.com/ralungei/fusion-procurement/pkg/fusion"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// FindWorker reads the worker with its assignments. The HCM workers resource
// is only readable with the write credential.
func (g *Gateway) FindWorker(ctx context.Context, personID models.ID) (*models.Worker, error) {
	path := fusion.Query{
		Filter: fusion.EqID("PersonId", int64(personID)),
		Expand: workerAssignments,
	}.Path(workersPath)
	workers, err := getList[models.Worker](ctx, g.client, path, fusion.TierWrite)
	if err != nil {
		return nil, err
	}
	return first(workers), nil
}

// SearchItems returns the first page of items whose number starts with prefix.
func (g *Gateway) SearchItems(ctx context.Context, prefix string, limit int) ([]models.Item, error) {
	path := fusion.Query{Filter: fusion.Like("ItemNumber", prefix), Limit: limit}.Path(itemsPath)
	return getList[models.Item](ctx, g.client, path, fusion.TierRead)
}

// ItemSuppliers reads the supplier associations under an item's self link.
func (g *Gateway) ItemSuppliers(ctx context.Context, selfLink string) ([]models.SupplierAssociation, error) {
	path := strings.TrimRight(selfLink, "/") + itemSupplierChild
	return getList[models.SupplierAssociation](ctx, g.client, path, fusion.TierRead)
}
