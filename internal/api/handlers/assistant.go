package handlers

import (
	"net/http"

	"github.com/auraderm/storefront/internal/api/middleware"
	"github.com/auraderm/storefront/internal/models"
	"github.com/auraderm/storefront/internal/services"
	"github.com/auraderm/storefront/internal/utils"
	"github.com/auraderm/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AssistantHandler struct {
	assistantService *services.AssistantService
	validator        *validator.Validate
}

func NewAssistantHandler(assistantService *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		validator:        validator.New(),
	}
}

func (h *AssistantHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AssistantOrderRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.assistantService.CreateOrder(r.Context(), &req)

		if err != nil {
			logger.Warn("Assistant order failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("✅ Assistant order composed",
			"matched", len(result.Matched),
			"unmatched", len(result.Unmatched))
		response.Success(w, http.StatusOK, result)

	}
}
