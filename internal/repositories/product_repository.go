package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/utils"
	"github.com/lib/pq"
)

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

// The price column is TEXT on purpose: the upstream catalog feed mixes
// plain numbers with formatted strings ("$45.000") and the normalizer
// owns making sense of both.
const productColumns = `id, name, description, price, image_url, image_urls, category, stock, benefits`

func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY name`, productColumns)

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		product  models.Product
		price    string
		category sql.NullString
		stock    sql.NullInt64
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&price,
		&product.ImageURL,
		pq.Array(&product.ImageURLs),
		&category,
		&stock,
		pq.Array(&product.Benefits),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("scanning product: %w", err)
	}

	product.Price = price
	product.Category = category.String

	if stock.Valid {
		s := int(stock.Int64)
		product.Stock = &s
	}

	return &product, nil
}
