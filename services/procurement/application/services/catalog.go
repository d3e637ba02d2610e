package services

import (
	"context"

	"github.com/ralungei/fusion-procurement/pkg/fanout"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
	domainsvcs "github.com/ralungei/fusion-procurement/services/procurement/domain/services"
)

// CatalogSearch expands search terms into case variants and queries them all.
type CatalogSearch struct {
	catalog repositories.Catalog
	width   int
	log     logger.Logger
}

// NewCatalogSearch returns a CatalogSearch running at most width queries at once.
func NewCatalogSearch(catalog repositories.Catalog, width int, log logger.Logger) *CatalogSearch {
	return &CatalogSearch{catalog: catalog, width: width, log: log}
}

// Search runs one prefix query per variant of every term. Any failed query
// fails the whole search with a *domain.SearchFailure listing each failure.
// Otherwise the merged items are deduplicated by identity; an empty result
// is a nil slice and a nil error.
func (s *CatalogSearch) Search(ctx context.Context, terms []string, limit int) ([]models.Item, error) {
	variants := domainsvcs.ExpandTerms(terms)
	results := fanout.Map(ctx, s.width, variants, func(ctx context.Context, v string) ([]models.Item, error) {
		return s.catalog.SearchItems(ctx, v, limit)
	})

	var failure domain.SearchFailure
	var merged []models.Item
	for i, r := range results {
		if r.Err != nil {
			failure.Queries = append(failure.Queries, domain.QueryFailure{
				Index:   i,
				Variant: variants[i],
				Message: r.Err.Error(),
			})
			continue
		}
		merged = append(merged, r.Value...)
	}
	if len(failure.Queries) > 0 {
		s.log.ErrorContext(ctx, "catalog search failed",
			"queries", len(variants),
			"failed", len(failure.Queries),
		)
		return nil, &failure
	}

	items := domainsvcs.DedupeItems(merged)
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
