package handlers

import (
	"net/http"

	"github.com/auraderm/storefront/internal/api/middleware"
	"github.com/auraderm/storefront/internal/services"
	"github.com/auraderm/storefront/internal/utils/response"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) ListArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		articles, err := h.contentService.ListArticles(r.Context())

		if err != nil {
			logger.Error("Failed to list articles", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, articles)

	}
}
