package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/pricing"
	repository "github.com/auraderm/storefront/internal/repositories"
)

// CatalogService serves the product listing. Prices leave the catalog
// in two shapes: the raw value as stored, and a display string rendered
// the same way everywhere.
type CatalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	for i := range products {
		products[i].PriceFormatted = pricing.Format(products[i].Price)
	}

	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	product.PriceFormatted = pricing.Format(product.Price)

	return product, nil
}

// FindByNames resolves free-form product names against the catalog with
// a case-insensitive substring match in either direction, so "suero"
// finds "Suero Vitamina C" and "suero vitamina c facial" finds it too.
// Names that match nothing are returned separately.
func (s *CatalogService) FindByNames(ctx context.Context, names []string) ([]models.Product, []string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	var matched []models.Product

	var unmatched []string

	for _, name := range names {
		wanted := strings.ToLower(strings.TrimSpace(name))
		if wanted == "" {
			continue
		}

		found := false

		for i := range products {
			candidate := strings.ToLower(products[i].Name)
			if strings.Contains(candidate, wanted) || strings.Contains(wanted, candidate) {
				matched = append(matched, products[i])
				found = true

				break
			}
		}

		if !found {
			unmatched = append(unmatched, name)
		}
	}

	return matched, unmatched, nil
}
