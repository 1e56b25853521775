package primary

import (
	"context"

	"github.com/dhruvgupta3389/anvad/internal/models"
)

// ListProductsRequest contains filter options for browsing the catalog.
type ListProductsRequest struct {
	Category string // collection slug; empty = all
	Featured bool   // only featured products
	InStock  bool   // only in-stock products
	Limit    int
}

// CatalogService defines the primary port for catalog browsing.
type CatalogService interface {
	// ListProducts returns products matching the request, variants included.
	ListProducts(ctx context.Context, req ListProductsRequest) ([]*models.Product, error)

	// GetProduct returns one product with its variants.
	GetProduct(ctx context.Context, id int) (*models.Product, error)

	// ListCollections returns all collections.
	ListCollections(ctx context.Context) ([]*models.Collection, error)
}
