// internal/catalog/service_test.go
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

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

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := api.NewClient(config.APIConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5,
		RateLimit:      1000,
		RateBurst:      1000,
	}, session.NewStore(), log)
	require.NoError(t, err)

	return NewService(client, log)
}

func TestProductDetailEmbedsVariants(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/p1", r.URL.Path)
		json.NewEncoder(w).Encode(models.Product{
			ID:   "p1",
			Name: "Áo thun basic",
			Variants: []models.Variant{
				{ID: "v1", Color: "Black", Size: "M", Price: 150000, StockQuantity: 3},
				{ID: "v2", Color: "White", Size: "M", Price: 160000, StockQuantity: 5},
			},
		})
	}))

	product, err := svc.Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, product.Purchasable())
	assert.Len(t, product.Variants, 2)
}

func TestSearchOmitsUnsetFilters(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/search", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "áo", query.Get("name"))
		assert.Equal(t, "100000", query.Get("minPrice"))
		assert.False(t, query.Has("maxPrice"))
		assert.False(t, query.Has("categoryId"))

		w.Write([]byte("[]"))
	}))

	minPrice := 100000.0
	_, err := svc.Search(context.Background(), SearchFilter{Name: "áo", MinPrice: &minPrice})
	require.NoError(t, err)
}

func TestProductsList(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{{ID: "p1"}, {ID: "p2"}})
	}))

	products, err := svc.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCategoriesList(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Category{
			{ID: "c1", Name: "Áo nam", MainCategory: models.MainCategoryAoNam},
		})
	}))

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, models.MainCategoryAoNam, categories[0].MainCategory)
}
