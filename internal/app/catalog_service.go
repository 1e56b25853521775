package app

import (
	"context"
	"fmt"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
type CatalogServiceImpl struct {
	catalogRepo secondary.CatalogRepository
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(catalogRepo secondary.CatalogRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

// ListProducts returns catalog products matching the request filters.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context, req primary.ListProductsRequest) ([]*models.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx, secondary.ProductFilters{
		CollectionSlug: req.Category,
		FeaturedOnly:   req.Featured,
		InStockOnly:    req.InStock,
		Limit:          req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns one product with its variants.
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListCollections returns all collections.
func (s *CatalogServiceImpl) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	collections, err := s.catalogRepo.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}
