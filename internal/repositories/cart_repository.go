package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/auraderm/storefront/internal/models"
	"github.com/redis/go-redis/v9"
)

// CartRepository is the durable blob store behind the cart: one key per
// cart id, holding a versioned JSON snapshot of the line items.
type CartRepository interface {
	Load(ctx context.Context, cartID string) ([]models.LineItem, error)
	Save(ctx context.Context, cartID string, items []models.LineItem) error
	Clear(ctx context.Context, cartID string) error
}

const cartSchemaVersion = 1

type cartBlob struct {
	Schema int               `json:"schema"`
	Items  []models.LineItem `json:"items"`
}

type cartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepo(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRepository{client: client, ttl: ttl}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

// Load returns the stored line items. Absent, malformed or
// unrecognized data all come back as an empty cart: durability here is
// a convenience, never a reason to fail a session.
func (r *cartRepository) Load(ctx context.Context, cartID string) ([]models.LineItem, error) {
	data, err := r.client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}

	var blob cartBlob

	if err := json.Unmarshal(data, &blob); err != nil {
		slog.Warn("Discarding malformed stored cart", slog.String("cartId", cartID), slog.String("error", err.Error()))

		return nil, nil
	}

	if blob.Schema != cartSchemaVersion {
		slog.Warn("Discarding stored cart with unknown schema", slog.String("cartId", cartID), slog.Int("schema", blob.Schema))

		return nil, nil
	}

	return blob.Items, nil
}

func (r *cartRepository) Save(ctx context.Context, cartID string, items []models.LineItem) error {
	data, err := json.Marshal(cartBlob{Schema: cartSchemaVersion, Items: items})
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cartID, err)
	}

	if err := r.client.Set(ctx, cartKey(cartID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cartID, err)
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}

	return nil
}
