package main

import (
	"context"
	"log"

	"storefront-engine/internal/core/cache"
	"storefront-engine/internal/core/config"
	"storefront-engine/internal/core/database"
	"storefront-engine/internal/core/logger"
	"storefront-engine/internal/core/server"
	orderadapter "storefront-engine/internal/features/orders/adapters"
	orderhandler "storefront-engine/internal/features/orders/handler"
	orderports "storefront-engine/internal/features/orders/ports"
	orderservice "storefront-engine/internal/features/orders/service"
	shippingadapter "storefront-engine/internal/features/shipping/adapters"
	shippinghandler "storefront-engine/internal/features/shipping/handler"
	shippingservice "storefront-engine/internal/features/shipping/service"
	siteconfigadapter "storefront-engine/internal/features/siteconfig/adapters"
	siteconfighandler "storefront-engine/internal/features/siteconfig/handler"
	siteconfigservice "storefront-engine/internal/features/siteconfig/service"

	"go.uber.org/zap"
)

// @title Storefront Engine API
// @version 1.0
// @description Order lifecycle, shipping pricing, and storefront configuration for the online store.
// @contact.name API Support
// @contact.email support@storefront-engine.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	if err := database.RunMigrations(cfg.Database); err != nil {
		l.Fatal("Database migrations failed", zap.Error(err))
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		l.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()
	l.Info("Database connection verified")

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Shipping feature
	zoneRepo, err := shippingadapter.NewStaticZoneRepository(cfg.Shipping)
	if err != nil {
		l.Fatal("Failed to load shipping zones", zap.Error(err))
	}
	shippingSvc := shippingservice.NewShippingService(zoneRepo)
	shippingHdl := shippinghandler.NewShippingHandler(shippingSvc)

	// Orders feature
	orderRepo := orderadapter.NewPostgresOrderRepository(pool)
	var notifier orderports.StatusNotifier
	if cfg.Webhook.StatusURL != "" {
		notifier = orderadapter.NewWebhookNotifier(cfg.Webhook)
		l.Info("Status webhook enabled", zap.String("url", cfg.Webhook.StatusURL))
	}
	orderSvc := orderservice.NewOrderService(orderRepo, notifier)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Site configuration feature
	siteConfigRepo := siteconfigadapter.NewRedisSiteConfigRepository(redisCache)
	siteConfigSvc := siteconfigservice.NewSiteConfigService(siteConfigRepo)
	siteConfigHdl := siteconfighandler.NewSiteConfigHandler(siteConfigSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/shipping/calculate", shippingHdl.Calculate)
	srv.App.Post("/shipping/detect-zone", shippingHdl.DetectZone)
	srv.App.Get("/shipping/zones", shippingHdl.ListZones)

	srv.App.Post("/orders", orderHdl.PlaceOrder)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)
	srv.App.Patch("/orders/:id/status", orderHdl.ChangeStatus)
	srv.App.Patch("/orders/:id/payment-status", orderHdl.ChangePaymentStatus)
	srv.App.Post("/orders/:id/tracking", orderHdl.AddNote)

	srv.App.Get("/site-config", siteConfigHdl.Get)
	srv.App.Put("/site-config", siteConfigHdl.Update)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
