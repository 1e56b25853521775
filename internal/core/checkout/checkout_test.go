package checkout

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
)

func intPtr(n int) *int { return &n }

func line(productID int, sku string, price float64, qty int) cart.Line {
	return cart.Line{ProductID: productID, VariantSKU: sku, UnitPrice: price, Quantity: qty}
}

func inStockLookup(price float64, stock *int) Lookup {
	return Lookup{
		Product: &ProductRow{ID: 1, Name: "Gir Cow A2 Ghee", InStock: true},
		Variant: &VariantRow{SKU: "GIR-500ML", Price: price, OriginalPrice: price, InStock: true, StockQuantity: stock},
	}
}

func TestJudge(t *testing.T) {
	tests := []struct {
		name         string
		line         cart.Line
		lookup       Lookup
		wantStatus   Status
		wantProblems []string
	}{
		{
			name:         "clean line is valid",
			line:         line(1, "GIR-500ML", 699, 2),
			lookup:       inStockLookup(699, intPtr(10)),
			wantStatus:   StatusValid,
			wantProblems: []string{},
		},
		{
			name:         "untracked stock is valid at any quantity",
			line:         line(1, "GIR-500ML", 699, 500),
			lookup:       inStockLookup(699, nil),
			wantStatus:   StatusValid,
			wantProblems: []string{},
		},
		{
			name:         "product missing",
			line:         line(1, "GIR-500ML", 699, 1),
			lookup:       Lookup{Product: nil, Variant: nil},
			wantStatus:   StatusError,
			wantProblems: []string{"Product not found or no longer available", "Product variant not found"},
		},
		{
			name: "product globally out of stock",
			line: line(1, "GIR-500ML", 699, 1),
			lookup: Lookup{
				Product: &ProductRow{ID: 1, InStock: false},
				Variant: &VariantRow{SKU: "GIR-500ML", Price: 699, InStock: true},
			},
			wantStatus:   StatusError,
			wantProblems: []string{"Product is out of stock"},
		},
		{
			name: "variant missing",
			line: line(1, "GIR-9000ML", 699, 1),
			lookup: Lookup{
				Product: &ProductRow{ID: 1, InStock: true},
				Variant: nil,
			},
			wantStatus:   StatusError,
			wantProblems: []string{"Product variant not found"},
		},
		{
			name: "variant out of stock",
			line: line(1, "GIR-500ML", 699, 1),
			lookup: Lookup{
				Product: &ProductRow{ID: 1, InStock: true},
				Variant: &VariantRow{SKU: "GIR-500ML", Price: 699, InStock: false},
			},
			wantStatus:   StatusError,
			wantProblems: []string{"Variant is out of stock"},
		},
		{
			name:         "insufficient stock is a warning not an error",
			line:         line(1, "GIR-500ML", 699, 5),
			lookup:       inStockLookup(699, intPtr(3)),
			wantStatus:   StatusWarning,
			wantProblems: []string{"Only 3 items available, requested 5"},
		},
		{
			name:         "price drift is a warning",
			line:         line(1, "GIR-500ML", 299, 2),
			lookup:       inStockLookup(349, intPtr(10)),
			wantStatus:   StatusWarning,
			wantProblems: []string{"Price changed from ₹299 to ₹349"},
		},
		{
			name:         "low stock and price drift stack",
			line:         line(1, "GIR-500ML", 299, 5),
			lookup:       inStockLookup(349, intPtr(3)),
			wantStatus:   StatusWarning,
			wantProblems: []string{"Only 3 items available, requested 5", "Price changed from ₹299 to ₹349"},
		},
		{
			name: "error outranks warning",
			line: line(1, "GIR-500ML", 299, 5),
			lookup: Lookup{
				Product: &ProductRow{ID: 1, InStock: false},
				Variant: &VariantRow{SKU: "GIR-500ML", Price: 349, InStock: true, StockQuantity: intPtr(3)},
			},
			wantStatus: StatusError,
			wantProblems: []string{
				"Product is out of stock",
				"Only 3 items available, requested 5",
				"Price changed from ₹299 to ₹349",
			},
		},
		{
			name:         "lookup failure becomes an error verdict",
			line:         line(1, "GIR-500ML", 699, 1),
			lookup:       Lookup{Err: errors.New("query timeout")},
			wantStatus:   StatusError,
			wantProblems: []string{"Failed to validate item"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Judge(tt.line, tt.lookup)

			if v.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", v.Status, tt.wantStatus)
			}
			if len(v.Problems) != len(tt.wantProblems) {
				t.Fatalf("Problems = %v, want %v", v.Problems, tt.wantProblems)
			}
			for i, p := range tt.wantProblems {
				if v.Problems[i] != p {
					t.Errorf("Problems[%d] = %q, want %q", i, v.Problems[i], p)
				}
			}
			if v.RequestedQuantity != tt.line.Quantity {
				t.Errorf("RequestedQuantity = %d, want %d", v.RequestedQuantity, tt.line.Quantity)
			}
		})
	}
}

func TestJudgePriceDriftDetails(t *testing.T) {
	// Price drift reports the catalog's current price alongside the
	// snapshot price, and never blocks checkout by itself.
	v := Judge(line(1, "GIR-500ML", 299, 2), inStockLookup(349, intPtr(10)))

	if v.Status != StatusWarning {
		t.Fatalf("Status = %s, want warning", v.Status)
	}
	if v.CurrentUnitPrice != 349 {
		t.Errorf("CurrentUnitPrice = %v, want 349", v.CurrentUnitPrice)
	}
	if len(v.Problems) != 1 || !strings.Contains(v.Problems[0], "changed from ₹299 to ₹349") {
		t.Errorf("Problems = %v", v.Problems)
	}

	report := Fold([]Verdict{v})
	if !report.CanProceed() {
		t.Error("price drift alone must not block checkout")
	}
	if report.Summary.TotalPrice != 698 {
		t.Errorf("TotalPrice = %v, want 698 (current price x quantity)", report.Summary.TotalPrice)
	}
}

func TestJudgeFractionalPriceFormatting(t *testing.T) {
	v := Judge(line(1, "GIR-500ML", 299.5, 1), inStockLookup(310.75, nil))

	want := "Price changed from ₹299.5 to ₹310.75"
	if len(v.Problems) != 1 || v.Problems[0] != want {
		t.Errorf("Problems = %v, want [%q]", v.Problems, want)
	}
}

func TestFoldErrorLineBlocksAndIsExcludedFromTotal(t *testing.T) {
	// Scenario: one valid line at 100 x 2 and one error line. The total
	// counts only the valid line; the error blocks the order as a whole.
	valid := Judge(line(1, "GIR-500ML", 100, 2), inStockLookup(100, intPtr(10)))
	bad := Judge(line(2, "DESI-500ML", 649, 1), Lookup{
		Product: &ProductRow{ID: 2, InStock: true},
		Variant: &VariantRow{SKU: "DESI-500ML", Price: 649, InStock: false},
	})

	report := Fold([]Verdict{valid, bad})

	if report.CanProceed() {
		t.Error("CanProceed = true with an error verdict present")
	}
	if report.Summary.TotalPrice != 200 {
		t.Errorf("TotalPrice = %v, want 200", report.Summary.TotalPrice)
	}
	if report.Summary.ValidItems != 1 || report.Summary.ErrorItems != 1 {
		t.Errorf("Summary = %+v", report.Summary)
	}
}

func TestFoldAllValid(t *testing.T) {
	v1 := Judge(line(1, "GIR-500ML", 699, 2), inStockLookup(699, nil))
	v2 := Judge(line(4, "HONEY-500G", 499, 1), Lookup{
		Product: &ProductRow{ID: 4, InStock: true},
		Variant: &VariantRow{SKU: "HONEY-500G", Price: 499, OriginalPrice: 599, InStock: true},
	})

	report := Fold([]Verdict{v1, v2})

	if !report.CanProceed() {
		t.Error("CanProceed = false for all-valid cart")
	}
	if report.Summary.TotalPrice != 1897 {
		t.Errorf("TotalPrice = %v, want 1897", report.Summary.TotalPrice)
	}
	if report.Summary.WarningItems != 0 || report.Summary.ErrorItems != 0 {
		t.Errorf("Summary = %+v", report.Summary)
	}
}

func TestFoldEmpty(t *testing.T) {
	// The service layer rejects empty submissions before folding; an empty
	// fold still yields a coherent, proceedable report.
	report := Fold(nil)
	if !report.CanProceed() || report.Summary.TotalItems != 0 {
		t.Errorf("Fold(nil) = %+v", report.Summary)
	}
}
