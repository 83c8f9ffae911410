package handlers

import (
	"net/http"

	"github.com/auraderm/storefront/internal/api/middleware"
	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/services"
	"github.com/auraderm/storefront/internal/utils"
	"github.com/auraderm/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

func (h *CartHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cartID := r.PathValue("id")

		if cartID == "" {
			response.Error(w, appErrors.BadRequestError("Cart ID is required"))
			return
		}

		cart, err := h.cartService.Get(r.Context(), cartID)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		cartID := r.PathValue("id")

		if cartID == "" {
			response.Error(w, appErrors.BadRequestError("Cart ID is required"))
			return
		}

		var req models.AddItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		// The handler resolves the product so the cart service only
		// ever sees real catalog rows.
		product, err := h.catalogService.Get(r.Context(), req.ProductID)

		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), cartID, product)

		if err != nil {
			logger.Warn("Failed to add item to cart",
				"cart_id", cartID,
				"product_id", req.ProductID,
				"error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cartID := r.PathValue("id")

		if cartID == "" {
			response.Error(w, appErrors.BadRequestError("Cart ID is required"))
			return
		}

		var req models.UpdateQuantityRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), cartID, req.ProductID, req.Delta)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)

	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cartID := r.PathValue("id")
		productID := r.PathValue("productID")

		if cartID == "" || productID == "" {
			response.Error(w, appErrors.BadRequestError("Cart ID and product ID are required"))
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), cartID, productID)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)

	}
}
