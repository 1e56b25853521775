// Package cart contains the pure business logic for the shopper's cart.
// This is part of the Functional Core - no I/O, only pure functions.
// Persistence of the cart is an adapter concern (see ports/secondary.KeyValueStore).
package cart

import "fmt"

// ProductRef identifies the product a line was added from.
type ProductRef struct {
	ID   int
	Name string
}

// VariantRef identifies the purchasable variant of a product.
// ProductID ties the variant back to its owning product.
type VariantRef struct {
	SKU       string
	Label     string // display size, e.g. "500ml"
	Price     float64
	ProductID int
}

// Line is one (product, variant, quantity) entry in the cart.
// UnitPrice is the price the shopper last observed for the variant; the
// checkout reconciler compares it against the live catalog price.
type Line struct {
	ProductID    int     `json:"product_id"`
	ProductName  string  `json:"product_name"`
	VariantSKU   string  `json:"variant_sku"`
	VariantLabel string  `json:"variant_label"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
}

// State is the full cart. TotalPrice and TotalItemCount are derived from
// Lines and recomputed on every mutation, never set independently.
type State struct {
	Lines          []Line  `json:"lines"`
	TotalPrice     float64 `json:"total_price"`
	TotalItemCount int     `json:"total_item_count"`
}

// Empty returns the empty cart state.
func Empty() State {
	return State{}
}

// IsEmpty reports whether the cart has no lines.
func (s State) IsEmpty() bool {
	return len(s.Lines) == 0
}

// recompute derives the totals from the lines.
func recompute(lines []Line) State {
	var total float64
	var count int
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
		count += l.Quantity
	}
	return State{Lines: lines, TotalPrice: total, TotalItemCount: count}
}

// Add merges a selection into the cart. If a line for (product, variant)
// already exists its quantity is incremented, otherwise a new line is
// appended preserving insertion order.
//
// Invalid input is a programming error, not a runtime fault: a non-positive
// quantity or a variant that does not belong to the product panics.
func Add(s State, product ProductRef, variant VariantRef, quantity int) State {
	if quantity <= 0 {
		panic(fmt.Sprintf("cart: Add called with non-positive quantity %d", quantity))
	}
	if variant.ProductID != product.ID {
		panic(fmt.Sprintf("cart: variant %s belongs to product %d, not %d", variant.SKU, variant.ProductID, product.ID))
	}

	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)

	for i, l := range lines {
		if l.ProductID == product.ID && l.VariantSKU == variant.SKU {
			lines[i].Quantity += quantity
			return recompute(lines)
		}
	}

	lines = append(lines, Line{
		ProductID:    product.ID,
		ProductName:  product.Name,
		VariantSKU:   variant.SKU,
		VariantLabel: variant.Label,
		UnitPrice:    variant.Price,
		Quantity:     quantity,
	})
	return recompute(lines)
}

// UpdateQuantity sets the quantity of the matching line. A quantity of zero
// or less removes the line. Missing lines are a no-op.
func UpdateQuantity(s State, productID int, variantSKU string, quantity int) State {
	lines := make([]Line, 0, len(s.Lines))
	for _, l := range s.Lines {
		if l.ProductID == productID && l.VariantSKU == variantSKU {
			if quantity <= 0 {
				continue
			}
			l.Quantity = quantity
		}
		lines = append(lines, l)
	}
	return recompute(lines)
}

// Remove drops the matching line if present. Removing an absent line is a
// no-op, so the operation is idempotent.
func Remove(s State, productID int, variantSKU string) State {
	lines := make([]Line, 0, len(s.Lines))
	for _, l := range s.Lines {
		if l.ProductID == productID && l.VariantSKU == variantSKU {
			continue
		}
		lines = append(lines, l)
	}
	return recompute(lines)
}

// Clear resets to the empty cart.
func Clear() State {
	return Empty()
}
