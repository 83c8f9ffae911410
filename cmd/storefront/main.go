package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/auraderm/storefront/internal/api/handlers"
	"github.com/auraderm/storefront/internal/api/middleware"
	"github.com/auraderm/storefront/internal/config"
	"github.com/auraderm/storefront/internal/health"
	"github.com/auraderm/storefront/internal/metrics"
	repository "github.com/auraderm/storefront/internal/repositories"
	"github.com/auraderm/storefront/internal/services"
	"github.com/auraderm/storefront/internal/telemetry"
	"github.com/auraderm/storefront/internal/whatsapp"
	"github.com/auraderm/storefront/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	// Mongo setup
	mongoClient, err := repository.NewMongoClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the mongo instance", "error", err.Error())
		os.Exit(1)
	}

	cartRepo := repository.NewCartRepo(redisClient, cfg.Cart.TTL)
	articleRepo := repository.NewArticleRepo(mongoClient, cfg.Mongo.Database)

	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	composer := whatsapp.NewComposer(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Recipient)

	catalogService := services.NewCatalogService(repos.Product)
	cartService := services.NewCartService(cartRepo, cfg.Cart.EnforceStock)
	checkoutService := services.NewCheckoutService(cartService, composer)
	assistantService := services.NewAssistantService(catalogService, checkoutService)
	contentService := services.NewContentService(articleRepo)
	newsletterService := services.NewNewsletterService(repos.Subscriber, sendGridClient)

	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	contentHandler := handlers.NewContentHandler(contentService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:          repos.DB,
		RedisClient: redisClient,
		MongoClient: mongoClient,
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.List())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.Get())
	routerMux.HandleFunc("GET /api/v1/carts/{id}", cartHandler.Get())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/items", cartHandler.AddItem())
	routerMux.HandleFunc("PATCH /api/v1/carts/{id}/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/items/{productID}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/checkout", checkoutHandler.Begin())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/checkout/submit", checkoutHandler.Submit())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/checkout", checkoutHandler.Abandon())
	routerMux.HandleFunc("POST /api/v1/assistant/orders", assistantHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/articles", contentHandler.ListArticles())
	routerMux.HandleFunc("POST /api/v1/newsletter/subscriptions", newsletterHandler.Subscribe())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		slog.Error("⚠️ Mongo disconnect encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("⚠️ Redis close encountered an issue", slog.String("error", err.Error()))
	}

}
