// internal/cart/synchronizer.go

// Package cart owns the client-visible cart. Every mutation goes to the
// server and the returned canonical cart fully replaces local state; nothing
// is applied optimistically, so there is nothing to roll back on failure.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
)

var (
	// ErrItemBusy rejects a mutation while a previous mutation on the same
	// cart line is still in flight. Mutations on other lines are unaffected.
	ErrItemBusy = errors.New("cart item mutation already in flight")

	// ErrInvalidQuantity rejects quantities below 1 before any network call.
	// Removal is a distinct operation, never implied by quantity zero.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Synchronizer keeps the last known-good cart and serializes mutations per
// cart line with an in-flight key set.
type Synchronizer struct {
	api *api.Client
	log *logrus.Logger

	mu       sync.Mutex
	cart     *models.Cart
	inflight map[string]struct{}
}

func NewSynchronizer(client *api.Client, log *logrus.Logger) *Synchronizer {
	return &Synchronizer{
		api:      client,
		log:      log,
		inflight: make(map[string]struct{}),
	}
}

// Cart returns the last known-good cart, nil before the first refresh.
func (s *Synchronizer) Cart() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Busy reports whether a mutation for the cart line is in flight.
func (s *Synchronizer) Busy(cartItemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[cartItemID]
	return ok
}

// CanCheckout reports whether the cart has at least one line. Checkout
// re-verifies this against the server on its own load step.
func (s *Synchronizer) CanCheckout() bool {
	return !s.Cart().Empty()
}

// Refresh fetches the authoritative cart and replaces local state.
func (s *Synchronizer) Refresh(ctx context.Context) (*models.Cart, error) {
	var cart models.Cart
	if err := s.api.Get(ctx, "/api/carts/my-cart", &cart); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return s.replace(&cart), nil
}

// Count fetches the server-side item count for the cart badge.
func (s *Synchronizer) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.api.Get(ctx, "/api/carts/count", &count); err != nil {
		return 0, fmt.Errorf("get cart count: %w", err)
	}
	return count, nil
}

// AddItem adds a variant to the cart. The in-flight key is the variant id:
// a second add of the same variant waits for the first to settle.
func (s *Synchronizer) AddItem(ctx context.Context, variantID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !s.acquire(variantID) {
		return nil, ErrItemBusy
	}
	defer s.release(variantID)

	var cart models.Cart
	err := s.api.Post(ctx, "/api/carts/add-item", models.AddToCartRequest{
		ProductVariantID: variantID,
		Quantity:         quantity,
	}, &cart)
	if err != nil {
		s.log.WithField("variant_id", variantID).WithError(err).Warn("Add to cart failed")
		return nil, fmt.Errorf("add item: %w", err)
	}
	return s.replace(&cart), nil
}

// UpdateItem sets the quantity of an existing cart line.
func (s *Synchronizer) UpdateItem(ctx context.Context, cartItemID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !s.acquire(cartItemID) {
		return nil, ErrItemBusy
	}
	defer s.release(cartItemID)

	var cart models.Cart
	err := s.api.Put(ctx, "/api/carts/update-item", models.UpdateCartItemRequest{
		CartItemID: cartItemID,
		Quantity:   quantity,
	}, &cart)
	if err != nil {
		s.log.WithField("cart_item_id", cartItemID).WithError(err).Warn("Cart update failed")
		return nil, fmt.Errorf("update item: %w", err)
	}
	return s.replace(&cart), nil
}

// RemoveItem deletes a cart line.
func (s *Synchronizer) RemoveItem(ctx context.Context, cartItemID string) (*models.Cart, error) {
	if !s.acquire(cartItemID) {
		return nil, ErrItemBusy
	}
	defer s.release(cartItemID)

	var cart models.Cart
	if err := s.api.Delete(ctx, "/api/carts/remove-item/"+cartItemID, &cart); err != nil {
		s.log.WithField("cart_item_id", cartItemID).WithError(err).Warn("Cart remove failed")
		return nil, fmt.Errorf("remove item: %w", err)
	}
	return s.replace(&cart), nil
}

// acquire takes the per-key mutation lock. It never blocks: a held key means
// the new mutation is dropped, not queued.
func (s *Synchronizer) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[key]; ok {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *Synchronizer) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}

func (s *Synchronizer) replace(cart *models.Cart) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cart
	return cart
}
