// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the HTTP API and CLI call into.
package primary

import (
	"context"
	"errors"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
	"github.com/dhruvgupta3389/anvad/internal/core/checkout"
)

// ErrEmptyCart rejects a checkout submission with no lines. Raised before
// any catalog access; surfaced to HTTP callers as a 400.
var ErrEmptyCart = errors.New("cart items are required")

// ErrCatalogUnavailable signals the catalog backend cannot be reached at
// all. No partial report is produced; surfaced to HTTP callers as a 500.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CheckoutService defines the primary port for checkout-time revalidation.
type CheckoutService interface {
	// ValidateCart re-fetches authoritative catalog rows for every
	// submitted line and reconciles them against the client snapshot.
	// Returns ErrEmptyCart for an empty submission and
	// ErrCatalogUnavailable when the catalog is unreachable; per-line
	// problems are encoded in the report, never returned as errors.
	ValidateCart(ctx context.Context, lines []cart.Line) (*checkout.Report, error)
}
