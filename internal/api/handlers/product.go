package handlers

import (
	"net/http"

	"github.com/auraderm/storefront/internal/api/middleware"
	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/services"
	"github.com/auraderm/storefront/internal/utils/response"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.List(r.Context())

		if err != nil {
			logger.Error("Failed to list products", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)

	}
}

func (h *ProductHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID := r.PathValue("id")

		if productID == "" {
			response.Error(w, appErrors.BadRequestError("Product ID is required"))
			return
		}

		product, err := h.catalogService.Get(r.Context(), productID)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}
