package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/auraderm/storefront/internal/config"
	"github.com/auraderm/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ArticleRepository reads the blog/testimonial documents the community
// section renders. The collection is operator-editable, which is why
// the content service sanitizes everything on the way out.
type ArticleRepository interface {
	List(ctx context.Context) ([]models.Article, error)
}

type articleRepository struct {
	collection *mongo.Collection
}

func NewMongoClient(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

func NewArticleRepo(client *mongo.Client, database string) ArticleRepository {
	return &articleRepository{
		collection: client.Database(database).Collection("articles"),
	}
}

func (r *articleRepository) List(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []models.Article

	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}

	return articles, nil
}
