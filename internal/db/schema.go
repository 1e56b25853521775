package db

// SchemaSQL is the complete modern schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL(); if repository code references a column
// that does not exist here, those tests fail immediately with "no such
// column" instead of drifting silently.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Collections (category browsing: a2-ghee, honey, oils)
CREATE TABLE IF NOT EXISTS collections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Products (one row per catalog entry; in_stock gates the whole product)
CREATE TABLE IF NOT EXISTS products (
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
);

-- Variants (purchasable size options; stock_quantity NULL = untracked)
CREATE TABLE IF NOT EXISTS variants (
	sku TEXT NOT NULL,
	product_id INTEGER NOT NULL,
	label TEXT NOT NULL,
	price REAL NOT NULL,
	original_price REAL NOT NULL DEFAULT 0,
	in_stock INTEGER NOT NULL DEFAULT 1,
	stock_quantity INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (sku, product_id),
	FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
);

-- Orders (cart snapshot frozen as JSON at placement time)
CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	reference TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	address TEXT,
	cart_snapshot TEXT NOT NULL,
	total_price REAL NOT NULL,
	amount_paisa INTEGER NOT NULL,
	payment_status TEXT NOT NULL CHECK(payment_status IN ('pending', 'completed', 'failed')) DEFAULT 'pending',
	payment_id TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	paid_at DATETIME
);

-- OTPs (one active code per email)
CREATE TABLE IF NOT EXISTS otps (
	email TEXT PRIMARY KEY,
	code TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Newsletter subscribers
CREATE TABLE IF NOT EXISTS newsletter_subscribers (
	email TEXT PRIMARY KEY,
	subscribed_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_products_collection ON products(collection_id);
CREATE INDEX IF NOT EXISTS idx_variants_product ON variants(product_id);
CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(email);
`

// InitSchema creates the schema on fresh installs and runs pending
// migrations on existing databases.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create modern schema directly and mark all
		// migrations as applied so they never run against it.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
