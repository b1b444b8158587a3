// internal/orders/service_test.go
package orders

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/config"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
	"github.com/Thangttq233/FYP2025-FE/internal/session"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.NewStore()
	sess.Init("test-token", models.User{ID: "u1"})

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := api.NewClient(config.APIConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5,
		RateLimit:      1000,
		RateBurst:      1000,
	}, sess, log)
	require.NoError(t, err)

	return NewService(client, log)
}

func TestMyOrders(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/my-orders", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Order{
			{ID: "o1", Status: models.OrderStatusDelivered, PaymentStatus: models.PaymentStatusPaid},
			{ID: "o2", Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusUnpaid},
		})
	}))

	list, err := svc.MyOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.OrderStatusDelivered, list[0].Status)
}

func TestGetOrderDecodesSnapshotItems(t *testing.T) {
	orderDate := time.Date(2025, 11, 2, 14, 30, 0, 0, time.UTC)
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/o1", r.URL.Path)
		json.NewEncoder(w).Encode(models.Order{
			ID:            "o1",
			OrderDate:     orderDate,
			TotalPrice:    300000,
			Status:        models.OrderStatusConfirmed,
			PaymentStatus: models.PaymentStatusPaid,
			Items: []models.OrderItem{
				{ID: "oi1", ProductName: "Áo thun basic", Color: "Black", Size: "M", Quantity: 2, UnitPrice: 150000},
			},
		})
	}))

	order, err := svc.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, 300000.0, order.TotalPrice)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Áo thun basic", order.Items[0].ProductName)
	assert.True(t, order.OrderDate.Equal(orderDate))
}
