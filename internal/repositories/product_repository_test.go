package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/auraderm/storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return repository.NewProductRepo(db), mock
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "price", "image_url", "image_urls", "category", "stock", "benefits",
	})
}

func TestProductList(t *testing.T) {
	repo, mock := newProductRepo(t)

	rows := productRows().
		AddRow("p1", "Suero Vitamina C", "Serum antioxidante", "45000", "https://cdn/p1.jpg",
			pq.Array([]string{"https://cdn/p1.jpg", "https://cdn/p1b.jpg"}), "Cuidado Facial", 12,
			pq.Array([]string{"Ilumina", "Unifica el tono"})).
		AddRow("p2", "Crema Hidratante", "Hidratación profunda", "$38.000", "https://cdn/p2.jpg",
			pq.Array([]string{}), nil, nil, pq.Array([]string{}))

	mock.ExpectQuery(`SELECT (.+) FROM products ORDER BY name`).WillReturnRows(rows)

	products, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Suero Vitamina C", products[0].Name)
	assert.Equal(t, "45000", products[0].Price)
	require.NotNil(t, products[0].Stock)
	assert.Equal(t, 12, *products[0].Stock)

	// Formatted-string prices pass through untouched; normalization is
	// the caller's job.
	assert.Equal(t, "$38.000", products[1].Price)
	assert.Nil(t, products[1].Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByID(t *testing.T) {
	repo, mock := newProductRepo(t)

	rows := productRows().
		AddRow("p1", "Suero Vitamina C", "Serum antioxidante", "45000", "https://cdn/p1.jpg",
			pq.Array([]string{}), "Cuidado Facial", 0, pq.Array([]string{}))

	mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(rows)

	product, err := repo.GetByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	require.NotNil(t, product.Stock)
	assert.Equal(t, 0, *product.Stock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByIDNotFound(t *testing.T) {
	repo, mock := newProductRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	product, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
