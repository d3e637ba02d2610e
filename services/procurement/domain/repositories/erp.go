package repositories

import (
	"context"

	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

// The interfaces below are the backend reads and writes the application layer
// needs. The domain layer owns them; infrastructure/erp implements them over
// the REST client. Every method returns an error for a failed call; an empty
// result is a nil slice (or nil pointer) with a nil error.

// WorkerDirectory looks up HCM worker records.
type WorkerDirectory interface {
	// FindWorker returns nil when the person has no worker record.
	FindWorker(ctx context.Context, personID models.ID) (*models.Worker, error)
}

// Catalog searches items and their supplier associations.
type Catalog interface {
	// SearchItems returns the first page of items whose number starts with prefix.
	SearchItems(ctx context.Context, prefix string, limit int) ([]models.Item, error)

	// ItemSuppliers reads the supplier association child of the item at selfLink.
	ItemSuppliers(ctx context.Context, selfLink string) ([]models.SupplierAssociation, error)
}

// InventoryDirectory reads inventory organizations.
type InventoryDirectory interface {
	OrganizationsForBusinessUnit(ctx context.Context, bu models.ID) ([]models.InventoryOrganization, error)

	// OrganizationDetail returns nil when the organization does not exist.
	OrganizationDetail(ctx context.Context, orgID models.ID) (*models.InventoryOrganizationDetail, error)
}

// SupplierDirectory reads suppliers and their child resources. Child calls
// take the internal supplier id, never the party id.
type SupplierDirectory interface {
	// ResolveSupplier finds the supplier whose party id equals partyID.
	// It returns nil when no supplier matches.
	ResolveSupplier(ctx context.Context, partyID models.ID) (*models.SupplierRecord, error)

	Supplier(ctx context.Context, supplierID models.ID) (*models.SupplierRecord, error)
	Sites(ctx context.Context, supplierID models.ID) ([]models.SupplierSite, error)
	Addresses(ctx context.Context, supplierID models.ID) ([]models.SupplierAddress, error)
	Contacts(ctx context.Context, supplierID models.ID) ([]models.SupplierContact, error)
}

// RequisitionGateway creates requisition records with the write credential.
type RequisitionGateway interface {
	CreateHeader(ctx context.Context, p models.RequisitionHeaderPayload) (*models.RequisitionHeader, error)
	CreateLine(ctx context.Context, headerID models.ID, p models.RequisitionLinePayload) (*models.RequisitionLine, error)
}
