// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
	"time"

	"github.com/dhruvgupta3389/anvad/internal/models"
)

// ErrNotFound is returned by repositories and stores when the requested
// record does not exist. Callers that treat absence as a domain outcome
// (the checkout reconciler, the cart loader) branch on it with errors.Is.
var ErrNotFound = errors.New("not found")

// ProductFilters contains filter options for catalog listings.
type ProductFilters struct {
	CollectionSlug string // only products in this collection
	FeaturedOnly   bool   // only featured products
	InStockOnly    bool   // exclude globally out-of-stock products
	Limit          int    // 0 = no limit
}

// CatalogRepository defines the secondary port for read access to the
// authoritative product catalog. The checkout reconciler depends on exactly
// this view; nothing here mutates stock.
type CatalogRepository interface {
	// GetProduct returns the product row or ErrNotFound.
	GetProduct(ctx context.Context, id int) (*models.Product, error)

	// GetVariant returns the variant identified by (sku, productID) or
	// ErrNotFound.
	GetVariant(ctx context.Context, sku string, productID int) (*models.Variant, error)

	// ListProducts returns products matching the filters, variants included.
	ListProducts(ctx context.Context, filters ProductFilters) ([]*models.Product, error)

	// ListCollections returns all collections.
	ListCollections(ctx context.Context) ([]*models.Collection, error)

	// Ping verifies the catalog backend is reachable. Used to distinguish
	// systemic failure from per-line lookup failure.
	Ping(ctx context.Context) error
}

// OrderRepository defines the secondary port for order persistence.
type OrderRepository interface {
	// Create inserts the order and returns its row id.
	Create(ctx context.Context, order *models.Order) (int, error)

	// GetByReference returns the order with the given public reference or
	// ErrNotFound.
	GetByReference(ctx context.Context, reference string) (*models.Order, error)

	// List returns the most recent orders, newest first.
	List(ctx context.Context, limit int) ([]*models.Order, error)

	// MarkPaid records a completed payment against the order.
	MarkPaid(ctx context.Context, reference, paymentID string, paidAt time.Time) error
}

// OTPRecord represents one stored verification code.
type OTPRecord struct {
	Email     string
	Code      string
	CreatedAt time.Time
}

// OTPRepository defines the secondary port for one-time verification codes.
// At most one code is stored per address.
type OTPRepository interface {
	// Replace deletes any existing code for the address and stores the new one.
	Replace(ctx context.Context, rec OTPRecord) error

	// Get returns the stored code for the address or ErrNotFound.
	Get(ctx context.Context, email string) (*OTPRecord, error)

	// Delete removes the code for the address. Deleting an absent code is
	// not an error.
	Delete(ctx context.Context, email string) error
}

// NewsletterRepository defines the secondary port for newsletter subscriptions.
type NewsletterRepository interface {
	// Subscribe records the address. Returns false if it was already
	// subscribed; duplicates are not an error.
	Subscribe(ctx context.Context, email string) (bool, error)
}
