package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// NewsletterServiceImpl implements the NewsletterService interface.
type NewsletterServiceImpl struct {
	newsletterRepo secondary.NewsletterRepository
	log            *logrus.Entry
}

// NewNewsletterService creates a new NewsletterService with injected dependencies.
func NewNewsletterService(newsletterRepo secondary.NewsletterRepository, log *logrus.Logger) *NewsletterServiceImpl {
	return &NewsletterServiceImpl{
		newsletterRepo: newsletterRepo,
		log:            log.WithField("component", "newsletter"),
	}
}

// Subscribe records the address. Subscribing twice is not an error.
func (s *NewsletterServiceImpl) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return primary.ErrInvalidEmail
	}
	added, err := s.newsletterRepo.Subscribe(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	if added {
		s.log.WithField("email", email).Info("newsletter signup")
	}
	return nil
}
