package primary

import "context"

// NewsletterService defines the primary port for newsletter signups.
type NewsletterService interface {
	// Subscribe records the address. Subscribing twice is not an error.
	// Returns ErrInvalidEmail for malformed addresses.
	Subscribe(ctx context.Context, email string) error
}
