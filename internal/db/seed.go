package db

import (
	"database/sql"
	"fmt"
)

type seedVariant struct {
	sku           string
	label         string
	price         float64
	originalPrice float64
	stock         int // 0 = untracked (NULL)
}

type seedProduct struct {
	id          int
	collection  string // slug
	name        string
	description string
	basePrice   float64
	image       string
	rating      float64
	reviews     int
	featured    bool
	variants    []seedVariant
}

var seedCollections = []struct{ title, slug, description string }{
	{"A2 Ghee", "a2-ghee", "Traditionally churned A2 ghee from indigenous breeds"},
	{"Oil", "oils", "Cold-pressed oils"},
	{"Honey", "honey", "Raw, unprocessed honey"},
}

// seedProducts is the brand catalog: ghee, oils and honey with their size
// variants, list prices and strike-through prices.
var seedProducts = []seedProduct{
	{
		id: 1, collection: "a2-ghee", name: "Gir Cow A2 Ghee",
		description: "Pure A2 Ghee made from Gir cow milk, traditionally churned for authentic taste and nutrition",
		basePrice:   1299, image: "https://images.pexels.com/photos/9105966/pexels-photo-9105966.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.9, reviews: 245, featured: true,
		variants: []seedVariant{
			{"GIR-1000ML", "1000ml", 1299, 1599, 40},
			{"GIR-500ML", "500ml", 699, 849, 60},
			{"GIR-220ML", "220ml", 349, 399, 0},
		},
	},
	{
		id: 2, collection: "a2-ghee", name: "Desi Cow A2 Ghee",
		description: "Premium A2 Ghee from indigenous desi cows, rich in nutrients and traditional flavor",
		basePrice:   1199, image: "https://images.pexels.com/photos/8805026/pexels-photo-8805026.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.8, reviews: 189, featured: true,
		variants: []seedVariant{
			{"DESI-1000ML", "1000ml", 1199, 1449, 35},
			{"DESI-500ML", "500ml", 649, 799, 0},
			{"DESI-220ML", "220ml", 329, 379, 0},
		},
	},
	{
		id: 3, collection: "a2-ghee", name: "Buffalo A2 Ghee",
		description: "Rich and creamy A2 Ghee from buffalo milk, perfect for cooking and health benefits",
		basePrice:   899, image: "https://images.pexels.com/photos/315420/pexels-photo-315420.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.7, reviews: 156, featured: true,
		variants: []seedVariant{
			{"BUFFALO-1000ML", "1000ml", 899, 1099, 20},
			{"BUFFALO-500ML", "500ml", 499, 599, 0},
			{"BUFFALO-220ML", "220ml", 249, 299, 0},
		},
	},
	{
		id: 4, collection: "oils", name: "Cold Pressed Coconut Oil",
		description: "Pure cold-pressed coconut oil extracted from fresh coconuts, rich in natural nutrients and flavor",
		basePrice:   599, image: "https://images.pexels.com/photos/315420/pexels-photo-315420.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.6, reviews: 78, featured: false,
		variants: []seedVariant{
			{"COCONUT-1000ML", "1000ml", 599, 749, 0},
			{"COCONUT-500ML", "500ml", 329, 399, 0},
			{"COCONUT-250ML", "250ml", 179, 219, 0},
		},
	},
	{
		id: 5, collection: "oils", name: "Mustard Oil - Cold Pressed",
		description: "Traditional cold-pressed mustard oil with authentic flavor, perfect for cooking and health benefits",
		basePrice:   449, image: "https://images.pexels.com/photos/315420/pexels-photo-315420.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.5, reviews: 92, featured: false,
		variants: []seedVariant{
			{"MUSTARD-1000ML", "1000ml", 449, 549, 0},
			{"MUSTARD-500ML", "500ml", 249, 299, 0},
		},
	},
	{
		id: 6, collection: "oils", name: "Sesame Oil - Pure",
		description: "Premium quality sesame oil, cold-pressed for maximum nutrition and authentic taste",
		basePrice:   699, image: "https://images.pexels.com/photos/315420/pexels-photo-315420.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.7, reviews: 45, featured: false,
		variants: []seedVariant{
			{"SESAME-500ML", "500ml", 699, 849, 15},
			{"SESAME-250ML", "250ml", 379, 449, 0},
		},
	},
	{
		id: 7, collection: "honey", name: "Raw Wildflower Honey",
		description: "Pure raw honey collected from wildflower meadows, unprocessed and natural with rich floral taste",
		basePrice:   799, image: "https://images.pexels.com/photos/9105966/pexels-photo-9105966.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.8, reviews: 156, featured: false,
		variants: []seedVariant{
			{"WILDFLOWER-1000G", "1000g", 799, 999, 0},
			{"WILDFLOWER-500G", "500g", 449, 549, 0},
			{"WILDFLOWER-250G", "250g", 249, 299, 0},
		},
	},
	{
		id: 8, collection: "honey", name: "Acacia Honey - Raw",
		description: "Premium acacia honey with delicate floral flavor, slow to crystallize and perfect for daily use",
		basePrice:   899, image: "https://images.pexels.com/photos/9105966/pexels-photo-9105966.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.9, reviews: 89, featured: false,
		variants: []seedVariant{
			{"ACACIA-500G", "500g", 899, 1099, 0},
			{"ACACIA-250G", "250g", 479, 579, 0},
		},
	},
	{
		id: 9, collection: "honey", name: "Forest Honey - Pure",
		description: "Deep amber forest honey harvested from deep forest hives, rich in minerals and antioxidants",
		basePrice:   1199, image: "https://images.pexels.com/photos/9105966/pexels-photo-9105966.jpeg?w=500&h=600&fit=crop&crop=center",
		rating: 4.7, reviews: 67, featured: false,
		variants: []seedVariant{
			{"FOREST-500G", "500g", 1199, 1449, 10},
			{"FOREST-250G", "250g", 649, 779, 0},
		},
	},
}

// SeedFixtures populates the database with the brand catalog. Existing
// rows with the same keys are replaced, so seeding is idempotent.
func SeedFixtures(database *sql.DB) error {
	collectionIDs := make(map[string]int64)
	for _, c := range seedCollections {
		_, err := database.Exec(
			"INSERT INTO collections (title, slug, description) VALUES (?, ?, ?) ON CONFLICT(slug) DO UPDATE SET title = excluded.title, description = excluded.description",
			c.title, c.slug, c.description,
		)
		if err != nil {
			return fmt.Errorf("seed collections: %w", err)
		}
		var id int64
		if err := database.QueryRow("SELECT id FROM collections WHERE slug = ?", c.slug).Scan(&id); err != nil {
			return fmt.Errorf("seed collections: %w", err)
		}
		collectionIDs[c.slug] = id
	}

	for _, p := range seedProducts {
		_, err := database.Exec(
			`INSERT INTO products (id, collection_id, name, description, base_price, image_url, rating, review_count, is_featured, in_stock)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
			 ON CONFLICT(id) DO UPDATE SET name = excluded.name, description = excluded.description, base_price = excluded.base_price,
			 image_url = excluded.image_url, rating = excluded.rating, review_count = excluded.review_count, is_featured = excluded.is_featured`,
			p.id, collectionIDs[p.collection], p.name, p.description, p.basePrice, p.image, p.rating, p.reviews, p.featured,
		)
		if err != nil {
			return fmt.Errorf("seed product %d: %w", p.id, err)
		}

		for _, v := range p.variants {
			var stock interface{}
			if v.stock > 0 {
				stock = v.stock
			}
			_, err := database.Exec(
				`INSERT INTO variants (sku, product_id, label, price, original_price, in_stock, stock_quantity)
				 VALUES (?, ?, ?, ?, ?, 1, ?)
				 ON CONFLICT(sku, product_id) DO UPDATE SET label = excluded.label, price = excluded.price,
				 original_price = excluded.original_price, stock_quantity = excluded.stock_quantity`,
				v.sku, p.id, v.label, v.price, v.originalPrice, stock,
			)
			if err != nil {
				return fmt.Errorf("seed variant %s: %w", v.sku, err)
			}
		}
	}

	return nil
}
