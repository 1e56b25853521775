package primary

import (
	"context"
	"errors"
)

// ErrInvalidEmail rejects a malformed email address before any storage or
// delivery work.
var ErrInvalidEmail = errors.New("valid email is required")

// OTPService defines the primary port for OTP-based checkout identity
// verification.
type OTPService interface {
	// Send generates a fresh 6-digit code for the address, replacing any
	// earlier code, stores it and emails it.
	Send(ctx context.Context, email string) error

	// Verify checks the code for the address. A wrong or expired code is a
	// domain outcome (false, nil), not a Go error. A correct code is
	// consumed: it verifies exactly once.
	Verify(ctx context.Context, email, code string) (bool, error)
}
