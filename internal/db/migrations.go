package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_storefront_schema",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_payment_columns_to_orders",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_stock_quantity_to_variants",
		Up:      migrationV3,
	},
}

// RunMigrations applies all pending migrations in order
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		if err := migration.Up(db); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 creates the original storefront tables (pre payment tracking,
// pre per-variant stock counts).
func migrationV1(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS collections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			collection_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			base_price REAL NOT NULL DEFAULT 0,
			image_url TEXT,
			rating REAL NOT NULL DEFAULT 0,
			review_count INTEGER NOT NULL DEFAULT 0,
			is_featured INTEGER NOT NULL DEFAULT 0,
			in_stock INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (collection_id) REFERENCES collections(id)
		)`,
		`CREATE TABLE IF NOT EXISTS variants (
			sku TEXT NOT NULL,
			product_id INTEGER NOT NULL,
			label TEXT NOT NULL,
			price REAL NOT NULL,
			original_price REAL NOT NULL DEFAULT 0,
			in_stock INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (sku, product_id),
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			address TEXT,
			cart_snapshot TEXT NOT NULL,
			total_price REAL NOT NULL,
			amount_paisa INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS otps (
			email TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
			email TEXT PRIMARY KEY,
			subscribed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_collection ON products(collection_id)`,
		`CREATE INDEX IF NOT EXISTS idx_variants_product ON variants(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(email)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("v1: %w", err)
		}
	}
	return nil
}

// migrationV2 adds payment webhook tracking to orders.
func migrationV2(db *sql.DB) error {
	stmts := []string{
		`ALTER TABLE orders ADD COLUMN payment_status TEXT NOT NULL CHECK(payment_status IN ('pending', 'completed', 'failed')) DEFAULT 'pending'`,
		`ALTER TABLE orders ADD COLUMN payment_id TEXT`,
		`ALTER TABLE orders ADD COLUMN paid_at DATETIME`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("v2: %w", err)
		}
	}
	return nil
}

// migrationV3 adds tracked stock counts to variants. NULL keeps the old
// "untracked" behavior for existing rows.
func migrationV3(db *sql.DB) error {
	if _, err := db.Exec(`ALTER TABLE variants ADD COLUMN stock_quantity INTEGER`); err != nil {
		return fmt.Errorf("v3: %w", err)
	}
	return nil
}
