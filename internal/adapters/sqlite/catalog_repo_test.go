package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dhruvgupta3389/anvad/internal/adapters/sqlite"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

func TestCatalogRepositoryGetProduct(t *testing.T) {
	database := setupTestDB(t)
	collID := seedCollection(t, database, "A2 Ghee", "a2-ghee")
	seedProduct(t, database, 1, collID, "Gir Cow A2 Ghee", true, true)

	repo := sqlite.NewCatalogRepository(database)
	ctx := context.Background()

	p, err := repo.GetProduct(ctx, 1)
	if err != nil {
		t.Fatalf("GetProduct() error: %v", err)
	}
	if p.Name != "Gir Cow A2 Ghee" {
		t.Errorf("Name = %q", p.Name)
	}
	if !p.InStock || !p.IsFeatured {
		t.Errorf("InStock = %v, IsFeatured = %v, want both true", p.InStock, p.IsFeatured)
	}
}

func TestCatalogRepositoryGetProductNotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewCatalogRepository(database)

	_, err := repo.GetProduct(context.Background(), 404)
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("GetProduct(404) error = %v, want ErrNotFound", err)
	}
}

func TestCatalogRepositoryGetVariant(t *testing.T) {
	database := setupTestDB(t)
	collID := seedCollection(t, database, "A2 Ghee", "a2-ghee")
	seedProduct(t, database, 1, collID, "Gir Cow A2 Ghee", true, false)
	seedVariant(t, database, "GIR-500ML", 1, 699, 849, true, 25)
	seedVariant(t, database, "GIR-220ML", 1, 349, 399, true, -1)

	repo := sqlite.NewCatalogRepository(database)
	ctx := context.Background()

	t.Run("tracked stock", func(t *testing.T) {
		v, err := repo.GetVariant(ctx, "GIR-500ML", 1)
		if err != nil {
			t.Fatalf("GetVariant() error: %v", err)
		}
		if v.Price != 699 || v.OriginalPrice != 849 {
			t.Errorf("prices = %v / %v", v.Price, v.OriginalPrice)
		}
		if v.StockQuantity == nil || *v.StockQuantity != 25 {
			t.Errorf("StockQuantity = %v, want 25", v.StockQuantity)
		}
	})

	t.Run("untracked stock is nil", func(t *testing.T) {
		v, err := repo.GetVariant(ctx, "GIR-220ML", 1)
		if err != nil {
			t.Fatalf("GetVariant() error: %v", err)
		}
		if v.StockQuantity != nil {
			t.Errorf("StockQuantity = %v, want nil", *v.StockQuantity)
		}
	})

	t.Run("sku under wrong product", func(t *testing.T) {
		_, err := repo.GetVariant(ctx, "GIR-500ML", 2)
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestCatalogRepositoryListProducts(t *testing.T) {
	database := setupTestDB(t)
	gheeID := seedCollection(t, database, "A2 Ghee", "a2-ghee")
	honeyID := seedCollection(t, database, "Honey", "honey")
	seedProduct(t, database, 1, gheeID, "Gir Cow A2 Ghee", true, true)
	seedProduct(t, database, 2, gheeID, "Desi Cow A2 Ghee", false, false)
	seedProduct(t, database, 3, honeyID, "Raw Wildflower Honey", true, false)
	seedVariant(t, database, "GIR-500ML", 1, 699, 849, true, 25)
	seedVariant(t, database, "GIR-1000ML", 1, 1299, 1599, true, -1)

	repo := sqlite.NewCatalogRepository(database)
	ctx := context.Background()

	t.Run("all products", func(t *testing.T) {
		products, err := repo.ListProducts(ctx, secondary.ProductFilters{})
		if err != nil {
			t.Fatalf("ListProducts() error: %v", err)
		}
		if len(products) != 3 {
			t.Fatalf("got %d products, want 3", len(products))
		}
	})

	t.Run("by collection slug", func(t *testing.T) {
		products, err := repo.ListProducts(ctx, secondary.ProductFilters{CollectionSlug: "honey"})
		if err != nil {
			t.Fatalf("ListProducts() error: %v", err)
		}
		if len(products) != 1 || products[0].Name != "Raw Wildflower Honey" {
			t.Fatalf("unexpected result: %+v", products)
		}
	})

	t.Run("featured and in stock", func(t *testing.T) {
		products, err := repo.ListProducts(ctx, secondary.ProductFilters{FeaturedOnly: true, InStockOnly: true})
		if err != nil {
			t.Fatalf("ListProducts() error: %v", err)
		}
		if len(products) != 1 || products[0].ID != 1 {
			t.Fatalf("unexpected result: %+v", products)
		}
	})

	t.Run("variants included cheapest first", func(t *testing.T) {
		products, err := repo.ListProducts(ctx, secondary.ProductFilters{CollectionSlug: "a2-ghee"})
		if err != nil {
			t.Fatalf("ListProducts() error: %v", err)
		}
		girIdx := -1
		for i, p := range products {
			if p.ID == 1 {
				girIdx = i
			}
		}
		if girIdx < 0 {
			t.Fatal("product 1 missing from listing")
		}
		variants := products[girIdx].Variants
		if len(variants) != 2 {
			t.Fatalf("got %d variants, want 2", len(variants))
		}
		if variants[0].SKU != "GIR-500ML" || variants[1].SKU != "GIR-1000ML" {
			t.Errorf("variant order = %s, %s", variants[0].SKU, variants[1].SKU)
		}
	})
}

func TestCatalogRepositoryListCollections(t *testing.T) {
	database := setupTestDB(t)
	seedCollection(t, database, "A2 Ghee", "a2-ghee")
	seedCollection(t, database, "Honey", "honey")

	repo := sqlite.NewCatalogRepository(database)
	collections, err := repo.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections() error: %v", err)
	}
	if len(collections) != 2 {
		t.Fatalf("got %d collections, want 2", len(collections))
	}
	if collections[0].Slug != "a2-ghee" {
		t.Errorf("first slug = %s", collections[0].Slug)
	}
}

func TestCatalogRepositoryPing(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewCatalogRepository(database)
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}
