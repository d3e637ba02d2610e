// Package erp implements the procurement gateways over the ERP REST API.
// It owns the resource paths and query strings; callers see typed records.
package erp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ralungei/fusion-procurement/pkg/fusion"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

const (
	fscmBase = "/fscmRestApi/resources/11.13.18.05"
	hcmBase  = "/hcmRestApi/resources/11.13.18.05"

	itemsPath          = fscmBase + "/itemsV2"
	suppliersPath      = fscmBase + "/suppliers"
	inventoryOrgsPath  = fscmBase + "/inventoryOrganizations"
	requisitionsPath   = fscmBase + "/purchaseRequisitions"
	workersPath        = hcmBase + "/workers"
	itemSupplierChild  = "/child/ItemSupplierAssociation"
	workerAssignments  = "workRelationships.assignments"
	requisitionLineSeg = "/child/lines"
)

var errEmptyResponse = errors.New("erp: empty response body")

// Collection is the envelope of every list response.
type Collection[T any] struct {
	Items   []T  `json:"items"`
	Count   int  `json:"count"`
	HasMore bool `json:"hasMore"`
}

// Gateway implements the WorkerDirectory, Catalog, InventoryDirectory,
// SupplierDirectory and RequisitionGateway interfaces.
type Gateway struct {
	client *fusion.Client
}

// NewGateway returns a Gateway over client.
func NewGateway(client *fusion.Client) *Gateway {
	return &Gateway{client: client}
}

func getList[T any](ctx context.Context, c *fusion.Client, path string, tier fusion.Tier) ([]T, error) {
	raw, err := c.Get(ctx, path, tier)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var col Collection[T]
	if err := json.Unmarshal(raw, &col); err != nil {
		return nil, fmt.Errorf("erp: decode %s: %w", path, err)
	}
	return col.Items, nil
}

func getOne[T any](ctx context.Context, c *fusion.Client, path string, tier fusion.Tier) (*T, error) {
	raw, err := c.Get(ctx, path, tier)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw, path)
}

func postOne[T any](ctx context.Context, c *fusion.Client, path string, body any) (*T, error) {
	raw, err := c.Post(ctx, path, body, fusion.TierWrite)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw, path)
}

func decodeOne[T any](raw json.RawMessage, path string) (*T, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyResponse)
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("erp: decode %s: %w", path, err)
	}
	return v, nil
}

func first[T any](items []T) *T {
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

func isNotFound(err error) bool {
	f, ok := fusion.AsFailure(err)
	return ok && f.StatusCode == http.StatusNotFound
}

func idPath(base string, id models.ID) string {
	return base + "/" + id.String()
}
