// internal/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
)

// Service reads the product catalog. Variants come embedded in every product
// payload.
type Service struct {
	api *api.Client
	log *logrus.Logger
}

func NewService(client *api.Client, log *logrus.Logger) *Service {
	return &Service{api: client, log: log}
}

func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.api.Get(ctx, "/api/products", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Service) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.api.Get(ctx, "/api/products/"+id, &product); err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &product, nil
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.api.Get(ctx, "/api/categories", &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// SearchFilter holds the optional search parameters. Nil/empty fields are
// omitted from the query.
type SearchFilter struct {
	Name       string
	MinPrice   *float64
	MaxPrice   *float64
	CategoryID string
}

func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]models.Product, error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	if filter.CategoryID != "" {
		query.Set("categoryId", filter.CategoryID)
	}

	var products []models.Product
	if err := s.api.Get(ctx, "/api/products/search", &products, api.WithQuery(query)); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}
