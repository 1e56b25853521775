package primary

import (
	"context"
	"errors"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
	"github.com/dhruvgupta3389/anvad/internal/models"
)

// ErrOrderBlocked means the pre-placement validation pass found at least
// one error verdict, so the order cannot be created.
var ErrOrderBlocked = errors.New("cart failed validation, order cannot proceed")

// PlaceOrderRequest contains the finalized cart and the shopper's contact
// details. Lines are revalidated server-side before anything is written.
type PlaceOrderRequest struct {
	Customer models.Customer
	Lines    []cart.Line
}

// PlaceOrderResponse returns the identifiers of the created order.
type PlaceOrderResponse struct {
	OrderID    int
	Reference  string
	TotalPrice float64
}

// PaymentEvent is a payment-gateway webhook payload after signature
// verification.
type PaymentEvent struct {
	OrderReference string
	Status         string // "SUCCESS" records the payment, anything else is ignored
	PaymentID      string
	AmountPaisa    int64
}

// OrderService defines the primary port for order placement and payment
// event handling.
type OrderService interface {
	// PlaceOrder revalidates the cart against the live catalog, then
	// persists the order and dispatches the confirmation email
	// fire-and-forget. Returns ErrOrderBlocked when validation fails,
	// ErrEmptyCart / ErrCatalogUnavailable as ValidateCart would.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error)

	// GetOrder returns a placed order by its public reference.
	GetOrder(ctx context.Context, reference string) (*models.Order, error)

	// ListOrders returns recent orders, newest first.
	ListOrders(ctx context.Context, limit int) ([]*models.Order, error)

	// HandlePaymentEvent records a verified payment webhook. Non-success
	// statuses are acknowledged and ignored.
	HandlePaymentEvent(ctx context.Context, ev PaymentEvent) error
}
