package secondary

import (
	"context"

	"github.com/dhruvgupta3389/anvad/internal/models"
)

// Mailer defines the secondary port for transactional email. Order
// confirmation dispatch is fire-and-forget at the call site: a delivery
// failure must never roll back an already-placed order.
type Mailer interface {
	// SendOTP delivers a verification code to the address.
	SendOTP(ctx context.Context, to, code string) error

	// SendOrderConfirmation delivers the order confirmation.
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}
