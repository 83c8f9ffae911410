package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/auraderm/storefront/internal/utils"
)

type SubscriberRepository interface {
	// Add records a newsletter signup. Returns false when the email
	// was already subscribed.
	Add(ctx context.Context, email string) (bool, error)
}

type subscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepo(db *sql.DB) SubscriberRepository {
	return &subscriberRepository{DB: db}
}

func (r *subscriberRepository) Add(ctx context.Context, email string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO newsletter_subscribers (email, subscribed_at)
		VALUES ($1, NOW())
		ON CONFLICT (email) DO NOTHING
	`

	result, err := r.DB.ExecContext(dbCtx, query, email)
	if err != nil {
		return false, fmt.Errorf("failed to insert subscriber: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get inserted rows: %w", err)
	}

	return inserted > 0, nil
}
