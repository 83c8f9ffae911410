package services

import (
	"context"
	"log/slog"
	"time"

	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/metrics"
	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/pricing"
	repository "github.com/auraderm/storefront/internal/repositories"
)

// CartService owns the cart mutation rules. The line-item price is
// normalized exactly once, when the product first enters the cart, and
// never recomputed afterwards; a later catalog price change does not
// reprice items already in a cart.
//
// Persistence is best-effort: a failed save is logged and the mutation
// still succeeds, so a Redis hiccup degrades durability, not shopping.
type CartService struct {
	repo         repository.CartRepository
	enforceStock bool
}

func NewCartService(repo repository.CartRepository, enforceStock bool) *CartService {
	return &CartService{repo: repo, enforceStock: enforceStock}
}

func (s *CartService) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	return buildCart(cartID, items), nil
}

func (s *CartService) AddItem(ctx context.Context, cartID string, product *models.Product) (*models.Cart, error) {
	if s.enforceStock && product.Stock != nil && *product.Stock == 0 {
		return nil, appErrors.ConflictError("Product is out of stock")
	}

	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	found := false

	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity++
			found = true

			break
		}
	}

	if !found {
		items = append(items, models.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Price:     pricing.Normalize(product.Price),
			Quantity:  1,
		})
	}

	s.persist(ctx, cartID, items)
	metrics.CartMutation("add")

	return buildCart(cartID, items), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productID string, delta int) (*models.Cart, error) {
	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	changed := false

	for i := range items {
		if items[i].ProductID == productID {
			quantity := items[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}

			items[i].Quantity = quantity
			changed = true

			break
		}
	}

	// Absent product IDs are a silent no-op; removal goes through
	// RemoveItem only.
	if changed {
		s.persist(ctx, cartID, items)
		metrics.CartMutation("update_quantity")
	}

	return buildCart(cartID, items), nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (*models.Cart, error) {
	items, err := s.repo.Load(ctx, cartID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load cart").WithError(err)
	}

	remaining := items[:0]

	for _, item := range items {
		if item.ProductID != productID {
			remaining = append(remaining, item)
		}
	}

	if len(remaining) != len(items) {
		s.persist(ctx, cartID, remaining)
		metrics.CartMutation("remove")
	}

	return buildCart(cartID, remaining), nil
}

func (s *CartService) Clear(ctx context.Context, cartID string) {
	if err := s.repo.Clear(ctx, cartID); err != nil {
		slog.WarnContext(ctx, "❌ Failed to clear cart",
			slog.String("cart_id", cartID),
			slog.String("error", err.Error()))

		return
	}

	metrics.CartMutation("clear")
}

func (s *CartService) persist(ctx context.Context, cartID string, items []models.LineItem) {
	if err := s.repo.Save(ctx, cartID, items); err != nil {
		slog.WarnContext(ctx, "❌ Failed to persist cart, mutation kept in response only",
			slog.String("cart_id", cartID),
			slog.String("error", err.Error()))
	}
}

func buildCart(cartID string, items []models.LineItem) *models.Cart {
	if items == nil {
		items = []models.LineItem{}
	}

	total := 0.0

	for _, item := range items {
		total += item.Subtotal()
	}

	return &models.Cart{
		ID:        cartID,
		Items:     items,
		Total:     total,
		UpdatedAt: time.Now().UTC(),
	}
}
