package app

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/core/cart"
	"github.com/dhruvgupta3389/anvad/internal/core/checkout"
	"github.com/dhruvgupta3389/anvad/internal/ports/primary"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// CartServiceImpl implements the CartService interface. It keeps the
// shopper's cart in a key-value store under a versioned key and treats
// any unreadable snapshot as an empty cart.
type CartServiceImpl struct {
	store       secondary.KeyValueStore
	catalogRepo secondary.CatalogRepository
	checkout    primary.CheckoutService
	log         *logrus.Entry
}

// NewCartService creates a new CartService with injected dependencies.
func NewCartService(
	store secondary.KeyValueStore,
	catalogRepo secondary.CatalogRepository,
	checkoutSvc primary.CheckoutService,
	log *logrus.Logger,
) *CartServiceImpl {
	return &CartServiceImpl{
		store:       store,
		catalogRepo: catalogRepo,
		checkout:    checkoutSvc,
		log:         log.WithField("component", "cart"),
	}
}

// Current returns the persisted cart, or the empty cart when nothing
// usable is stored.
func (s *CartServiceImpl) Current(ctx context.Context) (cart.State, error) {
	return s.load(ctx), nil
}

// Add looks the selection up in the catalog and merges it into the cart.
func (s *CartServiceImpl) Add(ctx context.Context, productID int, variantSKU string, quantity int) (cart.State, error) {
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.catalogRepo.GetProduct(ctx, productID)
	if errors.Is(err, secondary.ErrNotFound) {
		return cart.State{}, primary.ErrLineNotInCatalog
	}
	if err != nil {
		return cart.State{}, err
	}
	variant, err := s.catalogRepo.GetVariant(ctx, variantSKU, productID)
	if errors.Is(err, secondary.ErrNotFound) {
		return cart.State{}, primary.ErrLineNotInCatalog
	}
	if err != nil {
		return cart.State{}, err
	}

	state := cart.Add(s.load(ctx),
		cart.ProductRef{ID: product.ID, Name: product.Name},
		cart.VariantRef{SKU: variant.SKU, Label: variant.Label, Price: variant.Price, ProductID: variant.ProductID},
		quantity,
	)
	s.persist(ctx, state)
	return state, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, productID int, variantSKU string, quantity int) (cart.State, error) {
	state := cart.UpdateQuantity(s.load(ctx), productID, variantSKU, quantity)
	s.persist(ctx, state)
	return state, nil
}

// Remove drops a line; removing an absent line is a no-op.
func (s *CartServiceImpl) Remove(ctx context.Context, productID int, variantSKU string) (cart.State, error) {
	state := cart.Remove(s.load(ctx), productID, variantSKU)
	s.persist(ctx, state)
	return state, nil
}

// Clear empties the cart.
func (s *CartServiceImpl) Clear(ctx context.Context) (cart.State, error) {
	state := cart.Clear()
	s.persist(ctx, state)
	return state, nil
}

// Checkout runs the reconciler over the current cart.
func (s *CartServiceImpl) Checkout(ctx context.Context) (*checkout.Report, error) {
	return s.checkout.ValidateCart(ctx, s.load(ctx).Lines)
}

// load reads the stored snapshot. Absence and corruption both yield the
// empty cart.
func (s *CartServiceImpl) load(ctx context.Context) cart.State {
	raw, err := s.store.Get(ctx, cart.StorageKey)
	if errors.Is(err, secondary.ErrNotFound) {
		return cart.Empty()
	}
	if err != nil {
		s.log.WithError(err).Warn("cart read failed, starting empty")
		return cart.Empty()
	}
	state, err := cart.Decode(raw)
	if err != nil {
		s.log.WithError(err).Warn("discarding unreadable cart snapshot")
		return cart.Empty()
	}
	return state
}

// persist writes the snapshot back. A write failure loses persistence,
// not the in-memory state, so it is logged rather than returned.
func (s *CartServiceImpl) persist(ctx context.Context, state cart.State) {
	raw, err := cart.Encode(state)
	if err != nil {
		s.log.WithError(err).Error("cart encode failed")
		return
	}
	if err := s.store.Set(ctx, cart.StorageKey, raw); err != nil {
		s.log.WithError(err).Error("cart write failed")
	}
}
