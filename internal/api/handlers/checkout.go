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

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

func (h *CheckoutHandler) Begin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		cartID := r.PathValue("id")

		if cartID == "" {
			response.Error(w, appErrors.BadRequestError("Cart ID is required"))
			return
		}

		session, err := h.checkoutService.Begin(r.Context(), cartID)

		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Checkout started", "cart_id", cartID, "checkout_id", session.ID)
		response.Success(w, http.StatusCreated, session)

	}
}

func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		cartID := r.PathValue("id")

		if cartID == "" {
			response.Error(w, appErrors.BadRequestError("Cart ID is required"))
			return
		}

		var req models.CheckoutSubmitRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		message, err := h.checkoutService.Submit(r.Context(), cartID, models.CustomerData{
			Name:    req.Name,
			City:    req.City,
			Address: req.Address,
			Phone:   req.Phone,
		})

		if err != nil {
			logger.Warn("Checkout submit failed", "cart_id", cartID, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("✅ Order composed", "cart_id", cartID)
		response.Success(w, http.StatusOK, message)

	}
}

func (h *CheckoutHandler) Abandon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cartID := r.PathValue("id")

		if cartID == "" {
			response.Error(w, appErrors.BadRequestError("Cart ID is required"))
			return
		}

		h.checkoutService.Abandon(cartID)

		response.Success(w, http.StatusOK, map[string]string{"state": string(services.StateIdle)})

	}
}
