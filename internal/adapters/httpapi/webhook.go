package httpapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// signatureHeader carries the hex HMAC-SHA256 of the raw request body.
const signatureHeader = "X-Signature"

// webhookPayload is the payment gateway's callback body.
type webhookPayload struct {
	OrderReference string `json:"order_reference"`
	Status         string `json:"status"`
	PaymentID      string `json:"payment_id"`
	AmountPaisa    int64  `json:"amount_paisa"`
}

// sign computes the hex HMAC-SHA256 of body under the given secret.
func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature checks the header against the raw body in constant time.
func verifySignature(secret string, body []byte, header string) bool {
	want, err := hex.DecodeString(header)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), want)
}

func (s *Server) handleOrderWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	if !verifySignature(s.webhookSecret, body, r.Header.Get(signatureHeader)) {
		s.log.Warn("webhook signature rejected")
		s.writeError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.OrderReference == "" {
		s.writeError(w, http.StatusBadRequest, "order_reference is required")
		return
	}

	err = s.orders.HandlePaymentEvent(r.Context(), primary.PaymentEvent{
		OrderReference: payload.OrderReference,
		Status:         payload.Status,
		PaymentID:      payload.PaymentID,
		AmountPaisa:    payload.AmountPaisa,
	})
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "order not found")
		return
	case err != nil:
		s.log.WithError(err).Error("payment event failed")
		s.writeError(w, http.StatusInternalServerError, "failed to process event")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
