package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
	domainsvcs "github.com/ralungei/fusion-procurement/services/procurement/domain/services"
)

// SupplierDetails builds supplier profiles.
type SupplierDetails struct {
	suppliers repositories.SupplierDirectory
	scope     *AccessScope
	enrich    *InventoryEnrichment
	log       logger.Logger
}

// NewSupplierDetails wires a SupplierDetails.
func NewSupplierDetails(suppliers repositories.SupplierDirectory, scope *AccessScope, enrich *InventoryEnrichment, log logger.Logger) *SupplierDetails {
	return &SupplierDetails{suppliers: suppliers, scope: scope, enrich: enrich, log: log}
}

// Get returns the profile of the supplier with party id partyID. Sites are
// limited to personID's access scope and, when filterBU is set, to that
// business unit. Addresses, contacts and sites each degrade to empty on failure.
func (s *SupplierDetails) Get(ctx context.Context, personID, partyID, filterBU models.ID) (*models.SupplierDetail, error) {
	resolved, err := s.suppliers.ResolveSupplier(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve supplier %d: %w", domain.ErrBackendUnavailable, partyID, err)
	}
	if resolved == nil || !resolved.SupplierID.Valid() {
		return nil, fmt.Errorf("%w: party id %d", domain.ErrSupplierNotFound, partyID)
	}

	rec, err := s.suppliers.Supplier(ctx, resolved.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("%w: get supplier %d: %w", domain.ErrBackendUnavailable, resolved.SupplierID, err)
	}
	if rec == nil {
		rec = resolved
	}

	var (
		addresses []models.SupplierAddress
		contacts  []models.SupplierContact
		sites     []models.SupplierSite
		scope     models.BusinessUnitSet
		g         errgroup.Group
	)
	g.Go(func() error {
		var err error
		if addresses, err = s.suppliers.Addresses(ctx, rec.SupplierID); err != nil {
			s.log.WarnContext(ctx, "supplier addresses lookup failed", "supplier_id", rec.SupplierID, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if contacts, err = s.suppliers.Contacts(ctx, rec.SupplierID); err != nil {
			s.log.WarnContext(ctx, "supplier contacts lookup failed", "supplier_id", rec.SupplierID, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sites, err = s.suppliers.Sites(ctx, rec.SupplierID); err != nil {
			s.log.WarnContext(ctx, "supplier sites lookup failed", "supplier_id", rec.SupplierID, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		scope = s.scope.Resolve(ctx, personID)
		return nil
	})
	_ = g.Wait()

	sites = domainsvcs.FilterSitesByScope(sites, scope)
	if filterBU.Valid() {
		sites = domainsvcs.FilterSitesByScope(sites, models.NewBusinessUnitSet(filterBU))
	}
	if len(sites) > models.MaxDetailSites {
		sites = sites[:models.MaxDetailSites]
	}
	sites = s.enrich.Enrich(ctx, sites)

	detail := domainsvcs.BuildSupplierDetail(*rec, addresses, contacts, sites, filterBU)
	return &detail, nil
}
