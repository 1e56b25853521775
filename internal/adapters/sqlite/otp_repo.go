package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// OTPRepository implements secondary.OTPRepository with SQLite.
// The email column is the primary key, so at most one code exists per
// address and Replace is a plain upsert.
type OTPRepository struct {
	db *sql.DB
}

// NewOTPRepository creates a new SQLite OTP repository.
func NewOTPRepository(db *sql.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Replace deletes any existing code for the address and stores the new one.
func (r *OTPRepository) Replace(ctx context.Context, rec secondary.OTPRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO otps (email, code, created_at) VALUES (?, ?, ?) ON CONFLICT(email) DO UPDATE SET code = excluded.code, created_at = excluded.created_at",
		rec.Email, rec.Code, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

// Get returns the stored code for the address.
func (r *OTPRepository) Get(ctx context.Context, email string) (*secondary.OTPRecord, error) {
	var rec secondary.OTPRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT email, code, created_at FROM otps WHERE email = ?",
		email,
	).Scan(&rec.Email, &rec.Code, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	return &rec, nil
}

// Delete removes the code for the address.
func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM otps WHERE email = ?", email); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}
