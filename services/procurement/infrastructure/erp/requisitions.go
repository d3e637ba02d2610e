package erp

import (
	"context"

	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// CreateHeader posts a requisition header.
func (g *Gateway) CreateHeader(ctx context.Context, p models.RequisitionHeaderPayload) (*models.RequisitionHeader, error) {
	return postOne[models.RequisitionHeader](ctx, g.client, requisitionsPath, p)
}

// CreateLine posts a line under the header.
func (g *Gateway) CreateLine(ctx context.Context, headerID models.ID, p models.RequisitionLinePayload) (*models.RequisitionLine, error) {
	return postOne[models.RequisitionLine](ctx, g.client, idPath(requisitionsPath, headerID)+requisitionLineSeg, p)
}
