package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/auraderm/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Endpoints struct {
	DB          *sql.DB
	RedisClient *redis.Client
	MongoClient *mongo.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "auraderm-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:    "mongo",
				Timeout: 3 * time.Second,
				// Articles are non-critical content; a mongo outage
				// degrades the blog, not the store.
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					if endpoints.MongoClient == nil {
						return fmt.Errorf("mongo client is not initialized")
					}

					if err := endpoints.MongoClient.Ping(ctx, nil); err != nil {
						return fmt.Errorf("failed to ping mongo: %w", err)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
