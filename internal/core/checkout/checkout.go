// Package checkout contains the pure reconciliation logic that compares a
// client-submitted cart snapshot against authoritative catalog rows.
// This is part of the Functional Core - no I/O, only pure functions. The
// catalog lookups themselves happen in the app layer; this package only
// judges their results.
package checkout

import (
	"fmt"
	"strconv"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
)

// Status classifies a line verdict. Severity order: error > warning > valid.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// severity maps a status to its rank for escalation.
func severity(s Status) int {
	switch s {
	case StatusError:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// escalate returns the more severe of two statuses. A line accumulates all
// of its problems but carries only its worst status.
func escalate(current, next Status) Status {
	if severity(next) > severity(current) {
		return next
	}
	return current
}

// ProductRow is the catalog's authoritative view of a product.
type ProductRow struct {
	ID      int
	Name    string
	InStock bool
}

// VariantRow is the catalog's authoritative view of a variant.
// StockQuantity is nil when stock is not tracked for the variant.
type VariantRow struct {
	SKU           string
	Price         float64
	OriginalPrice float64
	InStock       bool
	StockQuantity *int
}

// Lookup carries the catalog's answer for one submitted line. A nil Product
// or Variant means "not found". Err records a transient lookup failure for
// this line only; it never aborts the rest of the validation pass.
type Lookup struct {
	Product *ProductRow
	Variant *VariantRow
	Err     error
}

// Verdict is the per-line outcome of revalidation. It is produced fresh on
// every checkout attempt and never persisted.
type Verdict struct {
	ProductID         int      `json:"product_id"`
	VariantSKU        string   `json:"variant_sku"`
	RequestedQuantity int      `json:"requested_quantity"`
	Status            Status   `json:"status"`
	Problems          []string `json:"errors"`
	CurrentUnitPrice  float64  `json:"current_price"`
	OriginalUnitPrice float64  `json:"original_price"`
	InStock           bool     `json:"in_stock"`
	AvailableQuantity int      `json:"available_quantity"`
}

// Summary aggregates the verdicts of one validation pass.
type Summary struct {
	TotalItems   int     `json:"total_items"`
	ValidItems   int     `json:"valid_items"`
	WarningItems int     `json:"warning_items"`
	ErrorItems   int     `json:"error_items"`
	TotalPrice   float64 `json:"total_price"`
	CanProceed   bool    `json:"can_proceed"`
}

// Report is the full result of validating a cart snapshot.
type Report struct {
	Verdicts []Verdict `json:"items"`
	Summary  Summary   `json:"summary"`
}

// CanProceed reports whether the order may move forward: true iff no line
// carries an error verdict.
func (r Report) CanProceed() bool {
	return r.Summary.CanProceed
}

// formatPrice renders a rupee amount without trailing zeros (299, 349.5).
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Judge produces the verdict for a single line given the catalog's answer.
// Checks are independent; a line can collect several problems and its
// status is the most severe one triggered.
func Judge(line cart.Line, lu Lookup) Verdict {
	v := Verdict{
		ProductID:         line.ProductID,
		VariantSKU:        line.VariantSKU,
		RequestedQuantity: line.Quantity,
		Status:            StatusValid,
		Problems:          []string{},
	}

	if lu.Err != nil {
		v.Status = StatusError
		v.Problems = append(v.Problems, "Failed to validate item")
		return v
	}

	if lu.Product == nil {
		v.Status = StatusError
		v.Problems = append(v.Problems, "Product not found or no longer available")
	} else if !lu.Product.InStock {
		v.Status = StatusError
		v.Problems = append(v.Problems, "Product is out of stock")
	}

	if lu.Variant == nil {
		v.Status = escalate(v.Status, StatusError)
		v.Problems = append(v.Problems, "Product variant not found")
		return v
	}

	v.CurrentUnitPrice = lu.Variant.Price
	v.OriginalUnitPrice = lu.Variant.OriginalPrice
	if v.OriginalUnitPrice == 0 {
		v.OriginalUnitPrice = lu.Variant.Price
	}
	v.InStock = lu.Variant.InStock
	if lu.Variant.StockQuantity != nil {
		v.AvailableQuantity = *lu.Variant.StockQuantity
	}

	if !lu.Variant.InStock {
		v.Status = escalate(v.Status, StatusError)
		v.Problems = append(v.Problems, "Variant is out of stock")
	} else if lu.Variant.StockQuantity != nil && *lu.Variant.StockQuantity < line.Quantity {
		// Soft violation: the order may still proceed at reduced
		// expectation, the caller decides.
		v.Status = escalate(v.Status, StatusWarning)
		v.Problems = append(v.Problems, fmt.Sprintf("Only %d items available, requested %d", *lu.Variant.StockQuantity, line.Quantity))
	}

	if lu.Variant.Price != line.UnitPrice {
		// Price drift informs but never blocks checkout by itself.
		v.Status = escalate(v.Status, StatusWarning)
		v.Problems = append(v.Problems, fmt.Sprintf("Price changed from ₹%s to ₹%s", formatPrice(line.UnitPrice), formatPrice(lu.Variant.Price)))
	}

	return v
}

// Fold aggregates per-line verdicts into the final report. Error lines
// cannot be purchased and contribute nothing to the recomputed total; the
// total always uses the catalog's current prices, never the client's.
func Fold(verdicts []Verdict) Report {
	sum := Summary{TotalItems: len(verdicts), CanProceed: true}
	for _, v := range verdicts {
		switch v.Status {
		case StatusError:
			sum.ErrorItems++
			sum.CanProceed = false
		case StatusWarning:
			sum.WarningItems++
		default:
			sum.ValidItems++
		}
		if v.Status != StatusError {
			sum.TotalPrice += v.CurrentUnitPrice * float64(v.RequestedQuantity)
		}
	}
	return Report{Verdicts: verdicts, Summary: sum}
}
