// internal/checkout/orchestrator_test.go
package checkout

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/cart"
	"github.com/Thangttq233/FYP2025-FE/internal/config"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
	"github.com/Thangttq233/FYP2025-FE/internal/session"
)

func newTestOrchestrator(t *testing.T, handler http.Handler) *Orchestrator {
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

	return NewOrchestrator(cart.NewSynchronizer(client, log), client, log, "vi")
}

func nonEmptyCart() models.Cart {
	return models.Cart{
		ID:             "c1",
		Items:          []models.CartItem{{ID: "i1", Quantity: 1, ProductVariantPrice: 100000}},
		TotalCartPrice: 100000,
	}
}

func TestLoadWithEmptyCartRedirects(t *testing.T) {
	orchestrator := newTestOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Cart{ID: "c1"})
	}))

	result, err := orchestrator.Load(context.Background())
	require.NoError(t, err)
	// An empty cart is a redirect outcome, never an error.
	assert.Equal(t, StateRedirectToCart, result.State)

	// Checkout is unreachable from here.
	_, err = orchestrator.Submit(context.Background(), Form{ShippingAddress: "a", PhoneNumber: "p"})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestSubmitBeforeLoadIsRejected(t *testing.T) {
	orchestrator := newTestOrchestrator(t, http.NotFoundHandler())
	_, err := orchestrator.Submit(context.Background(), Form{ShippingAddress: "a", PhoneNumber: "p"})
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestValidationFailureNeverCallsNetwork(t *testing.T) {
	var createCalls atomic.Int32
	orchestrator := newTestOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders/create" {
			createCalls.Add(1)
		}
		json.NewEncoder(w).Encode(nonEmptyCart())
	}))

	_, err := orchestrator.Load(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name  string
		form  Form
		field string
	}{
		{"empty address", Form{PhoneNumber: "0901234567"}, "shippingAddress"},
		{"blank address", Form{ShippingAddress: "   ", PhoneNumber: "0901234567"}, "shippingAddress"},
		{"empty phone", Form{ShippingAddress: "12 Nguyễn Trãi"}, "phoneNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := orchestrator.Submit(context.Background(), tt.form)
			require.NoError(t, err)
			assert.Equal(t, StateReady, result.State)
			assert.Contains(t, result.FieldErrors, tt.field)
		})
	}

	assert.EqualValues(t, 0, createCalls.Load())
}

func TestSubmitIsSingleFlight(t *testing.T) {
	var createCalls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	orchestrator := newTestOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders/create" {
			createCalls.Add(1)
			entered <- struct{}{}
			<-release
			json.NewEncoder(w).Encode(models.Order{ID: "o1"})
			return
		}
		json.NewEncoder(w).Encode(nonEmptyCart())
	}))

	_, err := orchestrator.Load(context.Background())
	require.NoError(t, err)

	form := Form{ShippingAddress: "12 Nguyễn Trãi", PhoneNumber: "0901234567"}

	done := make(chan Result, 1)
	go func() {
		result, err := orchestrator.Submit(context.Background(), form)
		require.NoError(t, err)
		done <- result
	}()

	<-entered
	assert.Equal(t, StateSubmitting, orchestrator.State())

	_, err = orchestrator.Submit(context.Background(), form)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	result := <-done
	assert.Equal(t, StateSucceeded, result.State)
	assert.Equal(t, "o1", result.OrderID)
	assert.EqualValues(t, 1, createCalls.Load(), "exactly one order-creation call")
}

func TestSubmitFailureSurfacesServerMessageAndStaysResubmittable(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)

	orchestrator := newTestOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders/create" {
			if fail.Load() {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"message": "Sản phẩm đã hết hàng"})
				return
			}
			json.NewEncoder(w).Encode(models.Order{ID: "o2"})
			return
		}
		json.NewEncoder(w).Encode(nonEmptyCart())
	}))

	_, err := orchestrator.Load(context.Background())
	require.NoError(t, err)

	form := Form{ShippingAddress: "12 Nguyễn Trãi", PhoneNumber: "0901234567"}

	result, err := orchestrator.Submit(context.Background(), form)
	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, "Sản phẩm đã hết hàng", result.Reason)

	// Failed is re-submittable with Ready semantics.
	fail.Store(false)
	result, err = orchestrator.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.State)
	assert.Equal(t, "o2", result.OrderID)
}

func TestSubmitFailureWithoutServerMessageUsesGenericFallback(t *testing.T) {
	orchestrator := newTestOrchestrator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders/create" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(nonEmptyCart())
	}))

	_, err := orchestrator.Load(context.Background())
	require.NoError(t, err)

	result, err := orchestrator.Submit(context.Background(), Form{ShippingAddress: "a", PhoneNumber: "p"})
	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.NotEmpty(t, result.Reason)
}
