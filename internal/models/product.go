package models

import "time"

// Collection groups products for category browsing (e.g. "a2-ghee").
type Collection struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is one catalog entry. InStock gates the whole product; individual
// variants carry their own stock flags on top of it.
type Product struct {
	ID           int       `json:"id"`
	CollectionID int       `json:"collection_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	BasePrice    float64   `json:"base_price"`
	ImageURL     string    `json:"image_url"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	IsFeatured   bool      `json:"is_featured"`
	InStock      bool      `json:"in_stock"`
	Variants     []Variant `json:"variants,omitempty"`
}

// Variant is a purchasable size option of a product, with its own price and
// stock count. StockQuantity is nil when stock is not tracked.
type Variant struct {
	SKU           string  `json:"sku"`
	ProductID     int     `json:"product_id"`
	Label         string  `json:"label"` // display size, e.g. "500ml"
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	InStock       bool    `json:"in_stock"`
	StockQuantity *int    `json:"stock_quantity"`
}
