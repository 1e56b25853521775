package models

import "time"

// Payment statuses an order moves through.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Customer holds the shopper's contact details captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderLine is one purchased item as frozen into the order record.
type OrderLine struct {
	ProductID    int     `json:"product_id"`
	ProductName  string  `json:"product_name"`
	VariantSKU   string  `json:"variant_sku"`
	VariantLabel string  `json:"variant_label"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"line_total"`
}

// Order is a placed order. Reference is the public identifier handed to the
// shopper and to the payment webhook; ID is the database row id.
type Order struct {
	ID            int         `json:"id"`
	Reference     string      `json:"reference"`
	Customer      Customer    `json:"customer"`
	Lines         []OrderLine `json:"lines"`
	TotalPrice    float64     `json:"total_price"`
	AmountPaisa   int64       `json:"amount_paisa"`
	PaymentStatus string      `json:"payment_status"`
	PaymentID     string      `json:"payment_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
}
