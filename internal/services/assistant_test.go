package services_test

import (
	"context"
	"strings"
	"testing"

	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/models"
	repository "github.com/auraderm/storefront/internal/repositories"
	"github.com/auraderm/storefront/internal/services"
	"github.com/auraderm/storefront/internal/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssistantFixture(mockProducts *repository.MockProductRepository) *services.AssistantService {
	catalog := services.NewCatalogService(mockProducts)
	cart := services.NewCartService(newMemoryCartRepo(), false)
	composer := whatsapp.NewComposer("https://wa.me", "573017727626")
	checkout := services.NewCheckoutService(cart, composer)

	return services.NewAssistantService(catalog, checkout)
}

func TestAssistantCreateOrder(t *testing.T) {
	// Arrange
	mockProducts := new(repository.MockProductRepository)
	service := newAssistantFixture(mockProducts)

	mockProducts.On("List", mock.Anything).Return(sampleCatalog(), nil)

	// Act
	result, err := service.CreateOrder(context.Background(), &models.AssistantOrderRequest{
		ProductNames: []string{"suero", "protector solar"},
		CustomerName: "Ana",
		CustomerCity: "Bogotá",
	})

	// Assert: both products at quantity 1, same receipt shape as the
	// checkout form.
	require.NoError(t, err)
	assert.Equal(t, []string{"Suero Vitamina C", "Protector Solar SPF 50"}, result.Matched)
	assert.Empty(t, result.Unmatched)
	assert.Contains(t, result.Message.Text, "Cantidad: 1")
	assert.Contains(t, result.Message.Text, "*TOTAL PRODUCTOS:* $ 97.000")
	assert.Contains(t, result.Message.Text, "Nombre: Ana")
	assert.True(t, strings.HasPrefix(result.Message.Link, "https://wa.me/573017727626?text="))
	mockProducts.AssertExpectations(t)
}

func TestAssistantCreateOrderReportsUnmatched(t *testing.T) {
	mockProducts := new(repository.MockProductRepository)
	service := newAssistantFixture(mockProducts)

	mockProducts.On("List", mock.Anything).Return(sampleCatalog(), nil)

	result, err := service.CreateOrder(context.Background(), &models.AssistantOrderRequest{
		ProductNames: []string{"crema", "aceite de argán"},
		CustomerName: "Ana",
		CustomerCity: "Bogotá",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Crema Hidratante Nocturna"}, result.Matched)
	assert.Equal(t, []string{"aceite de argán"}, result.Unmatched)
}

func TestAssistantCreateOrderNoMatches(t *testing.T) {
	mockProducts := new(repository.MockProductRepository)
	service := newAssistantFixture(mockProducts)

	mockProducts.On("List", mock.Anything).Return(sampleCatalog(), nil)

	result, err := service.CreateOrder(context.Background(), &models.AssistantOrderRequest{
		ProductNames: []string{"shampoo"},
		CustomerName: "Ana",
		CustomerCity: "Bogotá",
	})

	assert.Nil(t, result)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}
