// Package httpapi exposes the storefront over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
)

// Server wires the primary services into an HTTP router.
type Server struct {
	checkout   primary.CheckoutService
	catalog    primary.CatalogService
	orders     primary.OrderService
	otp        primary.OTPService
	newsletter primary.NewsletterService

	webhookSecret string
	log           *logrus.Logger
}

// NewServer creates a Server over the given services. webhookSecret
// signs payment webhooks; an empty secret disables the webhook route.
func NewServer(
	checkout primary.CheckoutService,
	catalog primary.CatalogService,
	orders primary.OrderService,
	otp primary.OTPService,
	newsletter primary.NewsletterService,
	webhookSecret string,
	log *logrus.Logger,
) *Server {
	return &Server{
		checkout:      checkout,
		catalog:       catalog,
		orders:        orders,
		otp:           otp,
		newsletter:    newsletter,
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// Router builds the route table with logging and rate limiting applied.
func (s *Server) Router() *mux.Router {
	general := newRateLimiter(60, time.Minute)
	otpLimit := newRateLimiter(10, time.Minute)

	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/checkout/cart", s.limitMiddleware(general, s.handleValidateCart)).Methods(http.MethodPost)
	api.HandleFunc("/products", s.limitMiddleware(general, s.handleListProducts)).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", s.limitMiddleware(general, s.handleGetProduct)).Methods(http.MethodGet)
	api.HandleFunc("/collections", s.limitMiddleware(general, s.handleListCollections)).Methods(http.MethodGet)
	api.HandleFunc("/otp/send", s.limitMiddleware(otpLimit, s.handleSendOTP)).Methods(http.MethodPost)
	api.HandleFunc("/otp/verify", s.limitMiddleware(otpLimit, s.handleVerifyOTP)).Methods(http.MethodPost)
	api.HandleFunc("/orders", s.limitMiddleware(general, s.handlePlaceOrder)).Methods(http.MethodPost)
	api.HandleFunc("/newsletter", s.limitMiddleware(general, s.handleNewsletter)).Methods(http.MethodPost)
	if s.webhookSecret != "" {
		api.HandleFunc("/webhook/order", s.handleOrderWebhook).Methods(http.MethodPost)
	}

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return r
}

// loggingMiddleware logs every request with method, path, status and latency.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sw.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("response encode failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
