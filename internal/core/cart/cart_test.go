package cart

import (
	"fmt"
	"math"
	"testing"
)

var (
	gheeProduct = ProductRef{ID: 1, Name: "Gir Cow A2 Ghee"}
	ghee500     = VariantRef{SKU: "GIR-500ML", Label: "500ml", Price: 699, ProductID: 1}
	ghee1000    = VariantRef{SKU: "GIR-1000ML", Label: "1000ml", Price: 1299, ProductID: 1}
	honey       = ProductRef{ID: 4, Name: "Raw Forest Honey"}
	honey500    = VariantRef{SKU: "HONEY-500G", Label: "500g", Price: 499, ProductID: 4}
)

// checkInvariants verifies the derived-total and structural invariants that
// must hold after every operation.
func checkInvariants(t *testing.T, s State) {
	t.Helper()

	var wantTotal float64
	var wantCount int
	seen := make(map[string]bool)
	for _, l := range s.Lines {
		if l.Quantity <= 0 {
			t.Errorf("line (%d, %s) has non-positive quantity %d", l.ProductID, l.VariantSKU, l.Quantity)
		}
		key := fmt.Sprintf("%d/%s", l.ProductID, l.VariantSKU)
		if seen[key] {
			t.Errorf("duplicate line for (%d, %s)", l.ProductID, l.VariantSKU)
		}
		seen[key] = true
		wantTotal += l.UnitPrice * float64(l.Quantity)
		wantCount += l.Quantity
	}

	if math.Abs(s.TotalPrice-wantTotal) > 1e-9 {
		t.Errorf("TotalPrice = %v, want %v", s.TotalPrice, wantTotal)
	}
	if s.TotalItemCount != wantCount {
		t.Errorf("TotalItemCount = %d, want %d", s.TotalItemCount, wantCount)
	}
}

func TestAddMergesExistingLine(t *testing.T) {
	// Scenario: adding the same (product, variant) twice yields one line
	// with the summed quantity, not two lines.
	s := Add(Empty(), gheeProduct, ghee500, 2)
	s = Add(s, gheeProduct, ghee500, 3)

	if len(s.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(s.Lines))
	}
	if s.Lines[0].Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", s.Lines[0].Quantity)
	}
	if s.TotalItemCount != 5 {
		t.Errorf("TotalItemCount = %d, want 5", s.TotalItemCount)
	}
	checkInvariants(t, s)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := Add(Empty(), gheeProduct, ghee500, 1)
	s = Add(s, honey, honey500, 1)
	s = Add(s, gheeProduct, ghee1000, 1)
	s = Add(s, gheeProduct, ghee500, 2) // merge, must not reorder

	wantSKUs := []string{"GIR-500ML", "HONEY-500G", "GIR-1000ML"}
	if len(s.Lines) != len(wantSKUs) {
		t.Fatalf("expected %d lines, got %d", len(wantSKUs), len(s.Lines))
	}
	for i, sku := range wantSKUs {
		if s.Lines[i].VariantSKU != sku {
			t.Errorf("line %d SKU = %s, want %s", i, s.Lines[i].VariantSKU, sku)
		}
	}
	checkInvariants(t, s)
}

func TestAddRecordsVariantSnapshot(t *testing.T) {
	s := Add(Empty(), gheeProduct, ghee1000, 2)

	l := s.Lines[0]
	if l.ProductName != "Gir Cow A2 Ghee" {
		t.Errorf("ProductName = %q", l.ProductName)
	}
	if l.VariantLabel != "1000ml" {
		t.Errorf("VariantLabel = %q", l.VariantLabel)
	}
	if l.UnitPrice != 1299 {
		t.Errorf("UnitPrice = %v, want 1299", l.UnitPrice)
	}
	if s.TotalPrice != 2598 {
		t.Errorf("TotalPrice = %v, want 2598", s.TotalPrice)
	}
}

func TestAddPanicsOnBadInput(t *testing.T) {
	tests := []struct {
		name    string
		product ProductRef
		variant VariantRef
		qty     int
	}{
		{"zero quantity", gheeProduct, ghee500, 0},
		{"negative quantity", gheeProduct, ghee500, -1},
		{"variant of another product", gheeProduct, honey500, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			Add(Empty(), tt.product, tt.variant, tt.qty)
		})
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	s1 := Add(Empty(), gheeProduct, ghee500, 1)
	s2 := Add(s1, gheeProduct, ghee500, 4)

	if s1.Lines[0].Quantity != 1 {
		t.Errorf("original state mutated: quantity %d", s1.Lines[0].Quantity)
	}
	if s2.Lines[0].Quantity != 5 {
		t.Errorf("new state quantity = %d, want 5", s2.Lines[0].Quantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	base := Add(Empty(), gheeProduct, ghee500, 2)
	base = Add(base, honey, honey500, 1)

	tests := []struct {
		name      string
		productID int
		sku       string
		qty       int
		wantLines int
		wantQty   int // quantity of the ghee line, -1 if removed
	}{
		{"set higher", 1, "GIR-500ML", 7, 2, 7},
		{"set to one", 1, "GIR-500ML", 1, 2, 1},
		{"zero removes line", 1, "GIR-500ML", 0, 1, -1},
		{"negative removes line", 1, "GIR-500ML", -3, 1, -1},
		{"missing line is a no-op", 99, "NOPE", 5, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := UpdateQuantity(base, tt.productID, tt.sku, tt.qty)

			if len(s.Lines) != tt.wantLines {
				t.Fatalf("len(Lines) = %d, want %d", len(s.Lines), tt.wantLines)
			}
			got := -1
			for _, l := range s.Lines {
				if l.ProductID == 1 && l.VariantSKU == "GIR-500ML" {
					got = l.Quantity
				}
			}
			if got != tt.wantQty {
				t.Errorf("ghee line quantity = %d, want %d", got, tt.wantQty)
			}
			checkInvariants(t, s)
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := Add(Empty(), gheeProduct, ghee500, 2)
	s = Add(s, honey, honey500, 1)

	once := Remove(s, 1, "GIR-500ML")
	twice := Remove(once, 1, "GIR-500ML")

	if len(once.Lines) != 1 || len(twice.Lines) != 1 {
		t.Fatalf("len after remove = %d / %d, want 1 / 1", len(once.Lines), len(twice.Lines))
	}
	if once.TotalPrice != twice.TotalPrice || once.TotalItemCount != twice.TotalItemCount {
		t.Error("second remove changed the state")
	}
	checkInvariants(t, twice)
}

func TestClear(t *testing.T) {
	s := Add(Empty(), gheeProduct, ghee500, 3)
	s = Clear()

	if !s.IsEmpty() {
		t.Error("Clear() did not produce an empty cart")
	}
	if s.TotalPrice != 0 || s.TotalItemCount != 0 {
		t.Errorf("Clear() totals = %v / %d, want 0 / 0", s.TotalPrice, s.TotalItemCount)
	}
}

func TestInvariantsAcrossOperationSequence(t *testing.T) {
	s := Empty()
	checkInvariants(t, s)

	ops := []func(State) State{
		func(s State) State { return Add(s, gheeProduct, ghee500, 2) },
		func(s State) State { return Add(s, honey, honey500, 4) },
		func(s State) State { return Add(s, gheeProduct, ghee1000, 1) },
		func(s State) State { return UpdateQuantity(s, 4, "HONEY-500G", 2) },
		func(s State) State { return Add(s, gheeProduct, ghee500, 1) },
		func(s State) State { return Remove(s, 1, "GIR-1000ML") },
		func(s State) State { return UpdateQuantity(s, 1, "GIR-500ML", 0) },
		func(s State) State { return Remove(s, 1, "GIR-500ML") }, // already gone
	}
	for _, op := range ops {
		s = op(s)
		checkInvariants(t, s)
	}

	if len(s.Lines) != 1 || s.Lines[0].VariantSKU != "HONEY-500G" {
		t.Fatalf("unexpected final state: %+v", s.Lines)
	}
	if s.TotalPrice != 998 {
		t.Errorf("final TotalPrice = %v, want 998", s.TotalPrice)
	}
}
