// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements secondary.Mailer over a plain SMTP relay.
type SMTPMailer struct {
	cfg Config
	log *logrus.Entry
}

var _ secondary.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config, log *logrus.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log.WithField("component", "mailer")}
}

func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string) error {
	body, err := renderOTP(code)
	if err != nil {
		return err
	}
	if err := m.send(ctx, to, "Email Verification - ANVAD", body); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	m.log.WithField("to", to).Info("otp email sent")
	return nil
}

func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	body, err := renderOrderConfirmation(order)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Order Confirmation #%s - ANVAD", order.Reference)
	if err := m.send(ctx, order.Customer.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}
	m.log.WithFields(logrus.Fields{"to": order.Customer.Email, "order": order.Reference}).Info("order confirmation sent")
	return nil
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.cfg.From, to, subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
}

// LogMailer logs mail instead of sending it. Used when no SMTP relay
// is configured, and in tests.
type LogMailer struct {
	log *logrus.Entry
}

var _ secondary.Mailer = (*LogMailer)(nil)

func NewLogMailer(log *logrus.Logger) *LogMailer {
	return &LogMailer{log: log.WithField("component", "mailer")}
}

func (m *LogMailer) SendOTP(ctx context.Context, to, code string) error {
	m.log.WithFields(logrus.Fields{"to": to, "code": code}).Info("otp email (log only)")
	return nil
}

func (m *LogMailer) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	m.log.WithFields(logrus.Fields{"to": order.Customer.Email, "order": order.Reference}).Info("order confirmation (log only)")
	return nil
}
