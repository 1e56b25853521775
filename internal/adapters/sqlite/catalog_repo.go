// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// CatalogRepository implements secondary.CatalogRepository with SQLite.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new SQLite catalog repository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetProduct retrieves a product row by id, without variants.
func (r *CatalogRepository) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var (
		p           models.Product
		description sql.NullString
		imageURL    sql.NullString
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT id, collection_id, name, description, base_price, image_url, rating, review_count, is_featured, in_stock FROM products WHERE id = ?",
		id,
	).Scan(&p.ID, &p.CollectionID, &p.Name, &description, &p.BasePrice, &imageURL, &p.Rating, &p.ReviewCount, &p.IsFeatured, &p.InStock)

	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	p.Description = description.String
	p.ImageURL = imageURL.String

	variants, err := r.variantsForProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants
	return &p, nil
}

// GetVariant retrieves a variant by its (sku, product) key.
func (r *CatalogRepository) GetVariant(ctx context.Context, sku string, productID int) (*models.Variant, error) {
	var (
		v     models.Variant
		stock sql.NullInt64
	)

	err := r.db.QueryRowContext(ctx,
		"SELECT sku, product_id, label, price, original_price, in_stock, stock_quantity FROM variants WHERE sku = ? AND product_id = ?",
		sku, productID,
	).Scan(&v.SKU, &v.ProductID, &v.Label, &v.Price, &v.OriginalPrice, &v.InStock, &stock)

	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get variant %s: %w", sku, err)
	}

	if stock.Valid {
		n := int(stock.Int64)
		v.StockQuantity = &n
	}
	return &v, nil
}

// ListProducts retrieves products matching the filters, variants included,
// ordered by rating descending the way the storefront presents them.
func (r *CatalogRepository) ListProducts(ctx context.Context, filters secondary.ProductFilters) ([]*models.Product, error) {
	query := `SELECT p.id, p.collection_id, p.name, p.description, p.base_price, p.image_url, p.rating, p.review_count, p.is_featured, p.in_stock
		FROM products p`
	var args []interface{}
	var where []string

	if filters.CollectionSlug != "" {
		query += " JOIN collections c ON c.id = p.collection_id"
		where = append(where, "c.slug = ?")
		args = append(args, filters.CollectionSlug)
	}
	if filters.FeaturedOnly {
		where = append(where, "p.is_featured = 1")
	}
	if filters.InStockOnly {
		where = append(where, "p.in_stock = 1")
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY p.rating DESC, p.id ASC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var (
			p           models.Product
			description sql.NullString
			imageURL    sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.CollectionID, &p.Name, &description, &p.BasePrice, &imageURL, &p.Rating, &p.ReviewCount, &p.IsFeatured, &p.InStock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Description = description.String
		p.ImageURL = imageURL.String
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	for _, p := range products {
		variants, err := r.variantsForProduct(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Variants = variants
	}
	return products, nil
}

// variantsForProduct loads all variants of one product, cheapest first.
func (r *CatalogRepository) variantsForProduct(ctx context.Context, productID int) ([]models.Variant, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT sku, product_id, label, price, original_price, in_stock, stock_quantity FROM variants WHERE product_id = ? ORDER BY price ASC",
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants for product %d: %w", productID, err)
	}
	defer rows.Close()

	var variants []models.Variant
	for rows.Next() {
		var (
			v     models.Variant
			stock sql.NullInt64
		)
		if err := rows.Scan(&v.SKU, &v.ProductID, &v.Label, &v.Price, &v.OriginalPrice, &v.InStock, &stock); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		if stock.Valid {
			n := int(stock.Int64)
			v.StockQuantity = &n
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// ListCollections retrieves all collections.
func (r *CatalogRepository) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, slug, description, created_at FROM collections ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var collections []*models.Collection
	for rows.Next() {
		var (
			c           models.Collection
			description sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		c.Description = description.String
		collections = append(collections, &c)
	}
	return collections, rows.Err()
}

// Ping verifies the database is reachable.
func (r *CatalogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
