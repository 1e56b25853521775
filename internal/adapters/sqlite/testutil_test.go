// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so repository code and the
// authoritative schema cannot drift apart: a query against a column missing
// from schema.go fails here with "no such column".
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dhruvgupta3389/anvad/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCollection inserts a test collection and returns its id.
func seedCollection(t *testing.T, db *sql.DB, title, slug string) int {
	t.Helper()
	res, err := db.Exec("INSERT INTO collections (title, slug) VALUES (?, ?)", title, slug)
	if err != nil {
		t.Fatalf("failed to seed collection: %v", err)
	}
	id, _ := res.LastInsertId()
	return int(id)
}

// seedProduct inserts a test product.
func seedProduct(t *testing.T, db *sql.DB, id, collectionID int, name string, inStock, featured bool) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO products (id, collection_id, name, description, base_price, rating, is_featured, in_stock) VALUES (?, ?, ?, 'test product', 699, 4.8, ?, ?)",
		id, collectionID, name, featured, inStock,
	)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
}

// seedVariant inserts a test variant. stock < 0 stores NULL (untracked).
func seedVariant(t *testing.T, db *sql.DB, sku string, productID int, price, originalPrice float64, inStock bool, stock int) {
	t.Helper()
	var stockVal interface{}
	if stock >= 0 {
		stockVal = stock
	}
	_, err := db.Exec(
		"INSERT INTO variants (sku, product_id, label, price, original_price, in_stock, stock_quantity) VALUES (?, ?, '500ml', ?, ?, ?, ?)",
		sku, productID, price, originalPrice, inStock, stockVal,
	)
	if err != nil {
		t.Fatalf("failed to seed variant: %v", err)
	}
}
