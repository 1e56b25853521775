package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// otpTTL is how long a generated code stays valid.
const otpTTL = 10 * time.Minute

// OTPServiceImpl implements the OTPService interface.
type OTPServiceImpl struct {
	otpRepo secondary.OTPRepository
	mailer  secondary.Mailer
	log     *logrus.Entry
	now     func() time.Time
}

// NewOTPService creates a new OTPService with injected dependencies.
func NewOTPService(otpRepo secondary.OTPRepository, mailer secondary.Mailer, log *logrus.Logger) *OTPServiceImpl {
	return &OTPServiceImpl{
		otpRepo: otpRepo,
		mailer:  mailer,
		log:     log.WithField("component", "otp"),
		now:     time.Now,
	}
}

// generateCode returns a cryptographically random 6-digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// validEmail is deliberately loose: a non-empty local part, an @, and a
// dot somewhere in the domain.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.Contains(domain, "@")
}

// Send generates a fresh code for the address, replacing any earlier
// one, stores it and emails it.
func (s *OTPServiceImpl) Send(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return primary.ErrInvalidEmail
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := s.otpRepo.Replace(ctx, secondary.OTPRecord{
		Email:     email,
		Code:      code,
		CreatedAt: s.now(),
	}); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return err
	}
	s.log.WithField("email", email).Info("otp sent")
	return nil
}

// Verify checks the code for the address. A correct code is consumed:
// it verifies exactly once.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) (bool, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return false, primary.ErrInvalidEmail
	}

	rec, err := s.otpRepo.Get(ctx, email)
	if errors.Is(err, secondary.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load otp: %w", err)
	}

	if s.now().Sub(rec.CreatedAt) > otpTTL {
		// Expired codes are garbage, drop them on sight.
		if err := s.otpRepo.Delete(ctx, email); err != nil {
			s.log.WithError(err).Warn("failed to delete expired otp")
		}
		return false, nil
	}
	if rec.Code != strings.TrimSpace(code) {
		return false, nil
	}

	if err := s.otpRepo.Delete(ctx, email); err != nil {
		return false, fmt.Errorf("failed to consume otp: %w", err)
	}
	s.log.WithField("email", email).Info("otp verified")
	return true, nil
}
