package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// NewsletterRepository implements secondary.NewsletterRepository with SQLite.
type NewsletterRepository struct {
	db *sql.DB
}

// NewNewsletterRepository creates a new SQLite newsletter repository.
func NewNewsletterRepository(db *sql.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Subscribe records the address. Returns false when it was already
// subscribed; duplicates are not an error.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO newsletter_subscribers (email) VALUES (?) ON CONFLICT(email) DO NOTHING",
		email,
	)
	if err != nil {
		return false, fmt.Errorf("failed to subscribe %s: %w", email, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to subscribe %s: %w", email, err)
	}
	return n > 0, nil
}
