// internal/orders/service.go
package orders

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
)

// Service reads the authenticated customer's orders. Orders are append-only
// history on the client: nothing here mutates them.
type Service struct {
	api *api.Client
	log *logrus.Logger
}

func NewService(client *api.Client, log *logrus.Logger) *Service {
	return &Service{api: client, log: log}
}

func (s *Service) MyOrders(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	if err := s.api.Get(ctx, "/api/orders/my-orders", &list); err != nil {
		return nil, fmt.Errorf("list my orders: %w", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.api.Get(ctx, "/api/orders/"+id, &order); err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &order, nil
}
