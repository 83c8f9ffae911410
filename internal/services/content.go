package services

import (
	"context"

	appErrors "github.com/auraderm/storefront/internal/errors"
	"github.com/auraderm/storefront/internal/models"
	repository "github.com/auraderm/storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

// ContentService lists the community articles. The documents are
// operator-edited rich text, so every string field is stripped to
// plain text before it reaches a client.
type ContentService struct {
	repo      repository.ArticleRepository
	sanitizer *bluemonday.Policy
}

func NewContentService(repo repository.ArticleRepository) *ContentService {
	return &ContentService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *ContentService) ListArticles(ctx context.Context) ([]models.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch articles").WithError(err)
	}

	for i := range articles {
		articles[i].Title = s.sanitizer.Sanitize(articles[i].Title)
		articles[i].Excerpt = s.sanitizer.Sanitize(articles[i].Excerpt)
		articles[i].Author = s.sanitizer.Sanitize(articles[i].Author)

		for j, paragraph := range articles[i].Content {
			articles[i].Content[j] = s.sanitizer.Sanitize(paragraph)
		}
	}

	if articles == nil {
		articles = []models.Article{}
	}

	return articles, nil
}
