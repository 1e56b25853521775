package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
	"github.com/dhruvgupta3389/anvad/internal/core/checkout"
	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// validateCartRequest is the checkout reconciliation payload.
type validateCartRequest struct {
	Items []cart.Line `json:"items"`
}

// validateCartResponse mirrors the report plus a server timestamp.
type validateCartResponse struct {
	Items     []checkout.Verdict `json:"items"`
	Summary   checkout.Summary   `json:"summary"`
	Timestamp string             `json:"timestamp"`
}

func (s *Server) handleValidateCart(w http.ResponseWriter, r *http.Request) {
	var req validateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "cart items are required")
		return
	}

	report, err := s.checkout.ValidateCart(r.Context(), req.Items)
	switch {
	case errors.Is(err, primary.ErrEmptyCart):
		s.writeError(w, http.StatusBadRequest, "cart items are required")
		return
	case errors.Is(err, primary.ErrCatalogUnavailable):
		s.writeError(w, http.StatusInternalServerError, "Failed to validate cart")
		return
	case err != nil:
		s.log.WithError(err).Error("cart validation failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to validate cart")
		return
	}

	s.writeJSON(w, http.StatusOK, validateCartResponse{
		Items:     report.Verdicts,
		Summary:   report.Summary,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := primary.ListProductsRequest{
		Category: q.Get("category"),
		Featured: q.Get("featured") == "1" || q.Get("featured") == "true",
		InStock:  q.Get("in_stock") == "1" || q.Get("in_stock") == "true",
	}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		req.Limit = n
	}

	products, err := s.catalog.ListProducts(r.Context(), req)
	if err != nil {
		s.log.WithError(err).Error("list products failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []*models.Product{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := s.catalog.GetProduct(r.Context(), id)
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Product not found")
		return
	case err != nil:
		s.log.WithError(err).Error("get product failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	s.writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.catalog.ListCollections(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list collections failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch collections")
		return
	}
	if collections == nil {
		collections = []*models.Collection{}
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"collections": collections})
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}

	err := s.otp.Send(r.Context(), req.Email)
	switch {
	case errors.Is(err, primary.ErrInvalidEmail):
		s.writeError(w, http.StatusBadRequest, "valid email is required")
		return
	case err != nil:
		s.log.WithError(err).Error("otp send failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to send OTP")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "OTP sent successfully"})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}
	if req.OTP == "" {
		s.writeError(w, http.StatusBadRequest, "otp is required")
		return
	}

	ok, err := s.otp.Verify(r.Context(), req.Email, req.OTP)
	switch {
	case errors.Is(err, primary.ErrInvalidEmail):
		s.writeError(w, http.StatusBadRequest, "valid email is required")
		return
	case err != nil:
		s.log.WithError(err).Error("otp verify failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to verify OTP")
		return
	}
	if !ok {
		s.writeError(w, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "verified": true})
}

// placeOrderRequest carries the shopper details and the final cart.
type placeOrderRequest struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Items   []cart.Line `json:"items"`
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid order payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Address == "" {
		s.writeError(w, http.StatusBadRequest, "name, email and address are required")
		return
	}

	resp, err := s.orders.PlaceOrder(r.Context(), primary.PlaceOrderRequest{
		Customer: models.Customer{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		},
		Lines: req.Items,
	})
	switch {
	case errors.Is(err, primary.ErrEmptyCart):
		s.writeError(w, http.StatusBadRequest, "cart items are required")
		return
	case errors.Is(err, primary.ErrOrderBlocked):
		s.writeError(w, http.StatusConflict, "Cart validation failed, please review your cart")
		return
	case errors.Is(err, primary.ErrCatalogUnavailable):
		s.writeError(w, http.StatusInternalServerError, "Failed to place order")
		return
	case err != nil:
		s.log.WithError(err).Error("place order failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"order_id":    resp.OrderID,
		"reference":   resp.Reference,
		"total_price": resp.TotalPrice,
	})
}

func (s *Server) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "valid email is required")
		return
	}

	err := s.newsletter.Subscribe(r.Context(), req.Email)
	switch {
	case errors.Is(err, primary.ErrInvalidEmail):
		s.writeError(w, http.StatusBadRequest, "valid email is required")
		return
	case err != nil:
		s.log.WithError(err).Error("newsletter subscribe failed")
		s.writeError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
