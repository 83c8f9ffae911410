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

type NewsletterHandler struct {
	newsletterService *services.NewsletterService
	validator         *validator.Validate
}

func NewNewsletterHandler(newsletterService *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		validator:         validator.New(),
	}
}

func (h *NewsletterHandler) Subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SubscribeRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.newsletterService.Subscribe(r.Context(), req.Email); err != nil {
			logger.Error("Newsletter subscription failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		// Always 202: the caller cannot tell a fresh signup from a
		// repeat one, so the form stays enumeration-safe.
		response.Success(w, http.StatusAccepted, map[string]string{"status": "subscribed"})

	}
}
