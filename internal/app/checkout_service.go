package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
	"github.com/dhruvgupta3389/anvad/internal/core/checkout"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// CheckoutServiceImpl implements the CheckoutService interface.
type CheckoutServiceImpl struct {
	catalogRepo secondary.CatalogRepository
	log         *logrus.Entry
}

// NewCheckoutService creates a new CheckoutService with injected dependencies.
func NewCheckoutService(catalogRepo secondary.CatalogRepository, log *logrus.Logger) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		catalogRepo: catalogRepo,
		log:         log.WithField("component", "checkout"),
	}
}

// ValidateCart reconciles the submitted cart lines against the live
// catalog and produces a per-line report. A line whose lookup fails is
// reported as an error verdict for that line only; a catalog that is
// unreachable as a whole fails the entire call with
// ErrCatalogUnavailable.
func (s *CheckoutServiceImpl) ValidateCart(ctx context.Context, lines []cart.Line) (*checkout.Report, error) {
	// 1. Reject empty carts before touching the catalog
	if len(lines) == 0 {
		return nil, primary.ErrEmptyCart
	}

	// 2. Distinguish a down catalog from per-line failures
	if err := s.catalogRepo.Ping(ctx); err != nil {
		s.log.WithError(err).Error("catalog unavailable")
		return nil, fmt.Errorf("%w: %v", primary.ErrCatalogUnavailable, err)
	}

	// 3. Fan out one lookup per line, folded back by index
	lookups := make([]checkout.Lookup, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			lookups[i] = s.lookupLine(gctx, line)
			return nil
		})
	}
	// Workers never return errors; failures live inside each Lookup.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 4. Judge each line and fold the verdicts into a report
	verdicts := make([]checkout.Verdict, len(lines))
	for i, line := range lines {
		verdicts[i] = checkout.Judge(line, lookups[i])
	}
	report := checkout.Fold(verdicts)

	s.log.WithFields(logrus.Fields{
		"items":       report.Summary.TotalItems,
		"errors":      report.Summary.ErrorItems,
		"warnings":    report.Summary.WarningItems,
		"can_proceed": report.Summary.CanProceed,
	}).Info("cart validated")
	return &report, nil
}

// lookupLine fetches the product and variant for one cart line. A row
// that does not exist maps to a nil pointer (the judge turns that into
// a not-found verdict); any other failure is carried as Lookup.Err.
func (s *CheckoutServiceImpl) lookupLine(ctx context.Context, line cart.Line) checkout.Lookup {
	var lu checkout.Lookup

	product, err := s.catalogRepo.GetProduct(ctx, line.ProductID)
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		return lu
	case err != nil:
		s.log.WithError(err).WithField("product_id", line.ProductID).Warn("product lookup failed")
		lu.Err = err
		return lu
	}
	lu.Product = &checkout.ProductRow{
		ID:      product.ID,
		Name:    product.Name,
		InStock: product.InStock,
	}

	variant, err := s.catalogRepo.GetVariant(ctx, line.VariantSKU, line.ProductID)
	switch {
	case errors.Is(err, secondary.ErrNotFound):
		return lu
	case err != nil:
		s.log.WithError(err).WithField("sku", line.VariantSKU).Warn("variant lookup failed")
		lu.Err = err
		return lu
	}
	lu.Variant = &checkout.VariantRow{
		SKU:           variant.SKU,
		Price:         variant.Price,
		OriginalPrice: variant.OriginalPrice,
		InStock:       variant.InStock,
		StockQuantity: variant.StockQuantity,
	}
	return lu
}
