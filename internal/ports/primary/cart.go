package primary

import (
	"context"
	"errors"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
	"github.com/dhruvgupta3389/anvad/internal/core/checkout"
)

// ErrLineNotInCatalog rejects an add for a product or variant the catalog
// does not know.
var ErrLineNotInCatalog = errors.New("product or variant not found in catalog")

// CartService defines the primary port for the client-local cart. Every
// mutation persists the full state synchronously; an unreadable stored
// snapshot is treated as an empty cart, never surfaced as an error.
type CartService interface {
	// Current returns the persisted cart, or the empty cart when nothing
	// usable is stored.
	Current(ctx context.Context) (cart.State, error)

	// Add looks the selection up in the catalog and merges it into the
	// cart. Returns ErrLineNotInCatalog for unknown selections.
	Add(ctx context.Context, productID int, variantSKU string, quantity int) (cart.State, error)

	// UpdateQuantity sets a line's quantity; zero or less removes it.
	UpdateQuantity(ctx context.Context, productID int, variantSKU string, quantity int) (cart.State, error)

	// Remove drops a line; removing an absent line is a no-op.
	Remove(ctx context.Context, productID int, variantSKU string) (cart.State, error)

	// Clear empties the cart.
	Clear(ctx context.Context) (cart.State, error)

	// Checkout runs the reconciler over the current cart.
	Checkout(ctx context.Context) (*checkout.Report, error)
}
