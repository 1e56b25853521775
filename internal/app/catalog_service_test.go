package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

func TestCatalogGetProduct(t *testing.T) {
	svc := NewCatalogService(catalogWithGhee())

	product, err := svc.GetProduct(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if product.Name != "Gir Cow A2 Ghee" {
		t.Errorf("Name = %q", product.Name)
	}

	_, err = svc.GetProduct(context.Background(), 42)
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCatalogListProducts(t *testing.T) {
	svc := NewCatalogService(catalogWithGhee())

	products, err := svc.ListProducts(context.Background(), primary.ListProductsRequest{})
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("got %d products, want 2", len(products))
	}
}

func TestCatalogListCollections(t *testing.T) {
	repo := catalogWithGhee()
	repo.collections = []*models.Collection{{ID: 1, Title: "A2 Ghee", Slug: "a2-ghee"}}
	svc := NewCatalogService(repo)

	collections, err := svc.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(collections) != 1 || collections[0].Slug != "a2-ghee" {
		t.Errorf("collections = %+v", collections)
	}
}
