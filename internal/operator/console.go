// internal/operator/console.go

// Package operator issues order status transitions from the operator view.
// The client does not restrict transitions to the forward path; the server is
// the authority. The one client-side invariant is that a no-op transition is
// never submitted.
package operator

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
	// ErrNoopTransition rejects updating an order to the status it already has.
	ErrNoopTransition = errors.New("order already has this status")

	// ErrUnknownStatus rejects a status value outside the enum.
	ErrUnknownStatus = errors.New("unknown order status")
)

// Console is the operator's order list with transition commands.
type Console struct {
	api *api.Client
	log *logrus.Logger

	mu     sync.Mutex
	orders []models.Order
}

func NewConsole(client *api.Client, log *logrus.Logger) *Console {
	return &Console{api: client, log: log}
}

// Orders returns the cached list, nil before the first refresh.
func (c *Console) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders
}

// Refresh fetches the full order list.
func (c *Console) Refresh(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	if err := c.api.Get(ctx, "/api/orders", &list); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	c.mu.Lock()
	c.orders = list
	c.mu.Unlock()
	return list, nil
}

func (c *Console) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.api.Get(ctx, "/api/orders/"+id, &order); err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &order, nil
}

// UpdateStatus transitions an order and re-fetches the full list afterwards.
// There is no local patch: replacing the whole list keeps the list and detail
// views from diverging.
func (c *Console) UpdateStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) ([]models.Order, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(newStatus))
	}

	current, err := c.currentStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current == newStatus {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNoopTransition)
	}

	err = c.api.Put(ctx, "/api/orders/update-status", models.UpdateOrderStatusRequest{
		OrderID:   orderID,
		NewStatus: newStatus,
	}, nil)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"order_id":   orderID,
			"new_status": newStatus.String(),
		}).WithError(err).Warn("Status update failed")
		return nil, fmt.Errorf("update order %s status: %w", orderID, err)
	}

	c.log.WithFields(logrus.Fields{
		"order_id":   orderID,
		"new_status": newStatus.String(),
	}).Info("Order status updated")
	return c.Refresh(ctx)
}

func (c *Console) currentStatus(ctx context.Context, orderID string) (models.OrderStatus, error) {
	c.mu.Lock()
	for _, order := range c.orders {
		if order.ID == orderID {
			c.mu.Unlock()
			return order.Status, nil
		}
	}
	c.mu.Unlock()

	order, err := c.Get(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return order.Status, nil
}
