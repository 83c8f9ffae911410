package services

import (
	"context"
	"strings"

	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/pricing"
)

// AssistantService turns a conversational "create my order" command
// into the same receipt the checkout form produces. Each requested
// product lands with quantity 1; the shopper adjusts quantities in the
// chat with the store if needed.
type AssistantService struct {
	catalog  *CatalogService
	checkout *CheckoutService
}

func NewAssistantService(catalog *CatalogService, checkout *CheckoutService) *AssistantService {
	return &AssistantService{catalog: catalog, checkout: checkout}
}

type AssistantOrderResult struct {
	Message   models.OrderMessage `json:"message"`
	Matched   []string            `json:"matched_products"`
	Unmatched []string            `json:"unmatched_products,omitempty"`
}

func (s *AssistantService) CreateOrder(ctx context.Context, req *models.AssistantOrderRequest) (*AssistantOrderResult, error) {
	products, unmatched, err := s.catalog.FindByNames(ctx, req.ProductNames)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, appErrors.NotFoundError("None of the requested products exist").
			WithDetail(strings.Join(req.ProductNames, ", "))
	}

	items := make([]models.LineItem, 0, len(products))
	total := 0.0
	matched := make([]string, 0, len(products))

	for i := range products {
		item := models.LineItem{
			ProductID: products[i].ID,
			Name:      products[i].Name,
			ImageURL:  products[i].ImageURL,
			Price:     pricing.Normalize(products[i].Price),
			Quantity:  1,
		}

		items = append(items, item)
		total += item.Subtotal()
		matched = append(matched, item.Name)
	}

	customer := &models.CustomerData{
		Name: strings.TrimSpace(req.CustomerName),
		City: strings.TrimSpace(req.CustomerCity),
	}

	message := s.checkout.ComposeOrder("assistant", items, total, customer)

	return &AssistantOrderResult{
		Message:   message,
		Matched:   matched,
		Unmatched: unmatched,
	}, nil
}
