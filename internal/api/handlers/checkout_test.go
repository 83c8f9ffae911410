package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/auraderm/storefront/internal/api/handlers"
	"github.com/auraderm/storefront/internal/models"
	repository "github.com/auraderm/storefront/internal/repositories"
	"github.com/auraderm/storefront/internal/services"
	"github.com/auraderm/storefront/internal/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	handler *handlers.CheckoutHandler
	carts   *repository.MockCartRepository
}

func newCheckoutHandlerFixture() *checkoutFixture {
	carts := new(repository.MockCartRepository)
	cartService := services.NewCartService(carts, false)
	composer := whatsapp.NewComposer("https://wa.me", "573017727626")
	checkoutService := services.NewCheckoutService(cartService, composer)

	return &checkoutFixture{
		handler: handlers.NewCheckoutHandler(checkoutService),
		carts:   carts,
	}
}

func TestCheckoutHandler_Flow(t *testing.T) {
	fixture := newCheckoutHandlerFixture()

	items := []models.LineItem{
		{ProductID: "p1", Name: "Suero Vitamina C", Price: 45000, Quantity: 2},
	}

	fixture.carts.On("Load", mock.Anything, "session-1").Return(items, nil)
	fixture.carts.On("Clear", mock.Anything, "session-1").Return(nil)

	// Begin
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/session-1/checkout", nil)
	req.SetPathValue("id", "session-1")
	w := httptest.NewRecorder()

	fixture.handler.Begin()(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	envelope := decodeEnvelope(t, w)
	require.True(t, envelope.Success)

	// Submit
	body, _ := json.Marshal(models.CheckoutSubmitRequest{Name: "Ana", City: "Bogotá"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/carts/session-1/checkout/submit", bytes.NewBuffer(body))
	req.SetPathValue("id", "session-1")
	w = httptest.NewRecorder()

	fixture.handler.Submit()(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	envelope = decodeEnvelope(t, w)
	require.True(t, envelope.Success)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var message models.OrderMessage
	require.NoError(t, json.Unmarshal(raw, &message))

	assert.Contains(t, message.Text, "Suero Vitamina C")
	assert.True(t, strings.HasPrefix(message.Link, "https://wa.me/573017727626?text="))
	fixture.carts.AssertCalled(t, "Clear", mock.Anything, "session-1")
}

func TestCheckoutHandler_BeginEmptyCart(t *testing.T) {
	fixture := newCheckoutHandlerFixture()

	fixture.carts.On("Load", mock.Anything, "session-1").Return([]models.LineItem{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/session-1/checkout", nil)
	req.SetPathValue("id", "session-1")
	w := httptest.NewRecorder()

	fixture.handler.Begin()(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
}

func TestCheckoutHandler_SubmitWithoutSession(t *testing.T) {
	fixture := newCheckoutHandlerFixture()

	body, _ := json.Marshal(models.CheckoutSubmitRequest{Name: "Ana", City: "Bogotá"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/session-1/checkout/submit", bytes.NewBuffer(body))
	req.SetPathValue("id", "session-1")
	w := httptest.NewRecorder()

	fixture.handler.Submit()(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutHandler_Abandon(t *testing.T) {
	fixture := newCheckoutHandlerFixture()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/carts/session-1/checkout", nil)
	req.SetPathValue("id", "session-1")
	w := httptest.NewRecorder()

	fixture.handler.Abandon()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
}
