package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// OrderServiceImpl implements the OrderService interface.
type OrderServiceImpl struct {
	orderRepo secondary.OrderRepository
	checkout  primary.CheckoutService
	mailer    secondary.Mailer
	log       *logrus.Entry
	now       func() time.Time
}

// NewOrderService creates a new OrderService with injected dependencies.
func NewOrderService(
	orderRepo secondary.OrderRepository,
	checkoutSvc primary.CheckoutService,
	mailer secondary.Mailer,
	log *logrus.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		checkout:  checkoutSvc,
		mailer:    mailer,
		log:       log.WithField("component", "orders"),
		now:       time.Now,
	}
}

// newOrderReference returns a public order id like ORD-1A2B3C4D.
func newOrderReference() string {
	id := uuid.New().String()
	return "ORD-" + strings.ToUpper(id[:8])
}

// PlaceOrder revalidates the cart, persists the order with the catalog's
// current prices and dispatches the confirmation email without blocking
// the response.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, req primary.PlaceOrderRequest) (*primary.PlaceOrderResponse, error) {
	// 1. The reconciler decides whether the order may proceed.
	report, err := s.checkout.ValidateCart(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	if !report.CanProceed() {
		return nil, fmt.Errorf("%w: %d invalid items", primary.ErrOrderBlocked, report.Summary.ErrorItems)
	}

	// 2. Build order lines from the verdicts so prices are the live ones.
	lines := make([]models.OrderLine, 0, len(report.Verdicts))
	for i, v := range report.Verdicts {
		line := req.Lines[i]
		lines = append(lines, models.OrderLine{
			ProductID:    v.ProductID,
			ProductName:  line.ProductName,
			VariantSKU:   v.VariantSKU,
			VariantLabel: line.VariantLabel,
			UnitPrice:    v.CurrentUnitPrice,
			Quantity:     v.RequestedQuantity,
			LineTotal:    v.CurrentUnitPrice * float64(v.RequestedQuantity),
		})
	}

	order := &models.Order{
		Reference:     newOrderReference(),
		Customer:      req.Customer,
		Lines:         lines,
		TotalPrice:    report.Summary.TotalPrice,
		AmountPaisa:   int64(math.Round(report.Summary.TotalPrice * 100)),
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     s.now(),
	}

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = id

	s.log.WithFields(logrus.Fields{
		"order":        order.Reference,
		"total":        order.TotalPrice,
		"amount_paisa": order.AmountPaisa,
	}).Info("order placed")

	// 3. Confirmation email must not delay or fail the order.
	go func(order models.Order) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.mailer.SendOrderConfirmation(ctx, &order); err != nil {
			s.log.WithError(err).WithField("order", order.Reference).Error("confirmation email failed")
		}
	}(*order)

	return &primary.PlaceOrderResponse{
		OrderID:    id,
		Reference:  order.Reference,
		TotalPrice: order.TotalPrice,
	}, nil
}

// GetOrder returns a placed order by its public reference.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, reference string) (*models.Order, error) {
	return s.orderRepo.GetByReference(ctx, reference)
}

// ListOrders returns recent orders, newest first.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, limit int) ([]*models.Order, error) {
	return s.orderRepo.List(ctx, limit)
}

// HandlePaymentEvent records a verified payment webhook. Anything other
// than a success is acknowledged and left alone so the gateway can retry.
func (s *OrderServiceImpl) HandlePaymentEvent(ctx context.Context, ev primary.PaymentEvent) error {
	if !strings.EqualFold(ev.Status, "SUCCESS") {
		s.log.WithFields(logrus.Fields{"order": ev.OrderReference, "status": ev.Status}).Info("ignoring non-success payment event")
		return nil
	}
	if err := s.orderRepo.MarkPaid(ctx, ev.OrderReference, ev.PaymentID, s.now()); err != nil {
		return fmt.Errorf("failed to record payment for %s: %w", ev.OrderReference, err)
	}
	s.log.WithFields(logrus.Fields{"order": ev.OrderReference, "payment_id": ev.PaymentID}).Info("payment recorded")
	return nil
}
