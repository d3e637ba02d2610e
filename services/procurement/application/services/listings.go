package services

import (
	"context"
	"fmt"

	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	domainsvcs "github.com/ralungei/fusion-procurement/services/procurement/domain/services"
)

// Search result page bounds.
const (
	DefaultListingLimit = 10
	MaxListingLimit     = 100
)

// Listings answers product searches with grouped, purchasable listings.
type Listings struct {
	scope  *AccessScope
	search *CatalogSearch
	join   *SupplierJoin
	log    logger.Logger
}

// NewListings wires the search pipeline.
func NewListings(scope *AccessScope, search *CatalogSearch, join *SupplierJoin, log logger.Logger) *Listings {
	return &Listings{scope: scope, search: search, join: join, log: log}
}

// Find searches terms on behalf of personID. A search that matches nothing
// returns status no_results; one whose matches are all unreachable within
// the person's scope returns no_inventory_match. Only a failed catalog query
// is an error.
func (l *Listings) Find(ctx context.Context, personID models.ID, terms []string, limit int) (*models.Listing, error) {
	terms = domainsvcs.NormalizeTerms(terms)
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: at least one search term is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultListingLimit
	}
	if limit > MaxListingLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", domain.ErrInvalidInput, MaxListingLimit)
	}

	listing := &models.Listing{
		Terms:    terms,
		Queries:  len(domainsvcs.ExpandTerms(terms)),
		Products: []models.GroupedProduct{},
	}

	items, err := l.search.Search(ctx, terms, limit)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	listing.Items = len(items)
	if len(items) == 0 {
		listing.Status = models.ListingNoResults
		return listing, nil
	}

	scope := l.scope.Resolve(ctx, personID)
	suppliers := l.join.ResolveForItems(ctx, items, scope)
	listing.Products = domainsvcs.Project(items, suppliers)

	listing.Status = models.ListingOK
	if len(listing.Products) == 0 {
		listing.Status = models.ListingNoInventoryMatch
	}
	l.log.InfoContext(ctx, "listing built",
		"terms", len(terms),
		"items", len(items),
		"products", len(listing.Products),
		"scope_size", len(scope),
	)
	return listing, nil
}
