package services_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/models"
	repository "github.com/auraderm/storefront/internal/repositories"
	"github.com/auraderm/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCartGetEmpty(t *testing.T) {
	// Arrange
	mockRepo := new(repository.MockCartRepository)
	service := services.NewCartService(mockRepo, false)

	mockRepo.On("Load", mock.Anything, "session-1").Return([]models.LineItem{}, nil)

	// Act
	cart, err := service.Get(context.Background(), "session-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "session-1", cart.ID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	mockRepo.AssertExpectations(t)
}

func TestAddItemNormalizesAndFreezesPrice(t *testing.T) {
	// Arrange
	mockRepo := new(repository.MockCartRepository)
	service := services.NewCartService(mockRepo, false)

	product := &models.Product{ID: "p1", Name: "Suero Vitamina C", Price: "$45.000"}

	mockRepo.On("Load", mock.Anything, "session-1").Return([]models.LineItem{}, nil)
	mockRepo.On("Save", mock.Anything, "session-1", []models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 1},
	}).Return(nil)

	// Act
	cart, err := service.AddItem(context.Background(), "session-1", product)

	// Assert
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 45000.0, cart.Items[0].Price)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 45000.0, cart.Total)
	mockRepo.AssertExpectations(t)
}

func TestAddItemIncrementsExistingAndKeepsStoredPrice(t *testing.T) {
	// Arrange
	mockRepo := new(repository.MockCartRepository)
	service := services.NewCartService(mockRepo, false)

	// The catalog price moved to 50000 after the item entered the
	// cart; the stored line keeps the original 45000.
	product := &models.Product{ID: "p1", Name: "Suero Vitamina C", Price: 50000}

	mockRepo.On("Load", mock.Anything, "session-1").Return([]models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 1},
	}, nil)
	mockRepo.On("Save", mock.Anything, "session-1", []models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 2},
	}).Return(nil)

	// Act
	cart, err := service.AddItem(context.Background(), "session-1", product)

	// Assert
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 45000.0, cart.Items[0].Price)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 90000.0, cart.Total)
	mockRepo.AssertExpectations(t)
}

func TestAddItemOutOfStock(t *testing.T) {
	product := &models.Product{ID: "p1", Name: "Suero Vitamina C", Price: 45000, Stock: intPtr(0)}

	t.Run("rejected when stock enforcement is on", func(t *testing.T) {
		mockRepo := new(repository.MockCartRepository)
		service := services.NewCartService(mockRepo, true)

		cart, err := service.AddItem(context.Background(), "session-1", product)

		assert.Nil(t, cart)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("allowed when stock enforcement is off", func(t *testing.T) {
		mockRepo := new(repository.MockCartRepository)
		service := services.NewCartService(mockRepo, false)

		mockRepo.On("Load", mock.Anything, "session-1").Return([]models.LineItem{}, nil)
		mockRepo.On("Save", mock.Anything, "session-1", mock.Anything).Return(nil)

		cart, err := service.AddItem(context.Background(), "session-1", product)

		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	})
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	// Arrange
	mockRepo := new(repository.MockCartRepository)
	service := services.NewCartService(mockRepo, false)

	mockRepo.On("Load", mock.Anything, "session-1").Return([]models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 2},
	}, nil)
	mockRepo.On("Save", mock.Anything, "session-1", []models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 1},
	}).Return(nil)

	// Act: a -5 delta on quantity 2 bottoms out at 1, never 0.
	cart, err := service.UpdateQuantity(context.Background(), "session-1", "p1", -5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	mockRepo.AssertExpectations(t)
}

func TestUpdateQuantityUnknownProductIsNoOp(t *testing.T) {
	// Arrange
	mockRepo := new(repository.MockCartRepository)
	service := services.NewCartService(mockRepo, false)

	existing := []models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 2},
	}
	mockRepo.On("Load", mock.Anything, "session-1").Return(existing, nil)

	// Act
	cart, err := service.UpdateQuantity(context.Background(), "session-1", "ghost", 3)

	// Assert: nothing changed, nothing saved.
	require.NoError(t, err)
	assert.Equal(t, existing, cart.Items)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveItem(t *testing.T) {
	// Arrange
	mockRepo := new(repository.MockCartRepository)
	service := services.NewCartService(mockRepo, false)

	mockRepo.On("Load", mock.Anything, "session-1").Return([]models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 2},
		{ProductID: "p2", Name: "Crema Hidratante", Price: 38000, Quantity: 1},
	}, nil)
	mockRepo.On("Save", mock.Anything, "session-1", []models.LineItem{
		{ProductID: "p2", Name: "Crema Hidratante", Price: 38000, Quantity: 1},
	}).Return(nil)

	// Act
	cart, err := service.RemoveItem(context.Background(), "session-1", "p1")

	// Assert
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
	assert.Equal(t, 38000.0, cart.Total)
	mockRepo.AssertExpectations(t)
}

func TestSaveFailureDoesNotFailMutation(t *testing.T) {
	// Arrange
	mockRepo := new(repository.MockCartRepository)
	service := services.NewCartService(mockRepo, false)

	product := &models.Product{ID: "p1", Name: "Suero Vitamina C", Price: 45000}

	mockRepo.On("Load", mock.Anything, "session-1").Return([]models.LineItem{}, nil)
	mockRepo.On("Save", mock.Anything, "session-1", mock.Anything).
		Return(errors.New("redis: connection refused"))

	// Act
	cart, err := service.AddItem(context.Background(), "session-1", product)

	// Assert: the mutation survives a persistence failure.
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	mockRepo.AssertExpectations(t)
}

// memoryCartRepo backs the invariant test with a real store instead of
// per-call expectations.
type memoryCartRepo struct {
	items map[string][]models.LineItem
}

func newMemoryCartRepo() *memoryCartRepo {
	return &memoryCartRepo{items: make(map[string][]models.LineItem)}
}

func (r *memoryCartRepo) Load(_ context.Context, cartID string) ([]models.LineItem, error) {
	stored := r.items[cartID]
	out := make([]models.LineItem, len(stored))
	copy(out, stored)

	return out, nil
}

func (r *memoryCartRepo) Save(_ context.Context, cartID string, items []models.LineItem) error {
	stored := make([]models.LineItem, len(items))
	copy(stored, items)
	r.items[cartID] = stored

	return nil
}

func (r *memoryCartRepo) Clear(_ context.Context, cartID string) error {
	delete(r.items, cartID)
	return nil
}

func TestCartTotalInvariantUnderRandomMutations(t *testing.T) {
	// A few hundred random add/update/remove ops; after every one the
	// total must equal the sum of price*quantity and no quantity may
	// drop below 1.
	service := services.NewCartService(newMemoryCartRepo(), false)
	rng := rand.New(rand.NewSource(42))
	ctx := context.Background()

	catalog := make([]*models.Product, 6)
	for i := range catalog {
		catalog[i] = &models.Product{
			ID:    fmt.Sprintf("p%d", i),
			Name:  fmt.Sprintf("Producto %d", i),
			Price: float64((i + 1) * 15000),
		}
	}

	var cart *models.Cart

	var err error

	for op := 0; op < 300; op++ {
		product := catalog[rng.Intn(len(catalog))]

		switch rng.Intn(3) {
		case 0:
			cart, err = service.AddItem(ctx, "session-1", product)
		case 1:
			cart, err = service.UpdateQuantity(ctx, "session-1", product.ID, rng.Intn(7)-3)
		default:
			cart, err = service.RemoveItem(ctx, "session-1", product.ID)
		}

		require.NoError(t, err)

		expected := 0.0

		for _, item := range cart.Items {
			require.GreaterOrEqual(t, item.Quantity, 1)

			expected += item.Price * float64(item.Quantity)
		}

		assert.InDelta(t, expected, cart.Total, 1e-9)
	}
}
