package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/aaamo/storefront-api/internal/config"
	"github.com/aaamo/storefront-api/internal/handler"
	"github.com/aaamo/storefront-api/internal/kvstore"
	"github.com/aaamo/storefront-api/internal/middleware"
	"github.com/aaamo/storefront-api/internal/repository"
	"github.com/aaamo/storefront-api/internal/service"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Local key-value store
	store, err := kvstore.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		log.Error("open store", "error", err)
		os.Exit(1)
	}
	log.Info("opened local store", "dir", cfg.Store.DataDir)

	// Redis product cache is optional; the storefront runs without it.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, product cache disabled", "error", err)
			redisClient.Close()
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("connected to Redis")
		}
	}

	// Repositories
	productRepo := repository.NewProductRepository(store, log)
	cartRepo := repository.NewCartRepository(store, log)
	orderRepo := repository.NewOrderRepository(store, log)

	if err := productRepo.EnsureSeed(ctx); err != nil {
		log.Error("seed catalog", "error", err)
		os.Exit(1)
	}

	// Services
	productSvc := service.NewProductService(productRepo, redisClient)
	cartSvc := service.NewCartService(cartRepo, productRepo, cfg.MinOrder())
	orderSvc := service.NewOrderService(orderRepo, cartSvc)

	// Handlers
	productH := handler.NewProductHandler(productSvc)
	cartH := handler.NewCartHandler(cartSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	shippingH := handler.NewShippingHandler()
	healthH := handler.NewHealthHandler(store, redisClient, cfg.Site)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	adminOnly := middleware.AdminOnly(cfg.Admin.Email, cfg.Admin.Password)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/meta", healthH.Meta)

		products := v1.Group("/products")
		products.GET("", productH.List)
		products.GET("/:id", productH.GetByID)

		adminProducts := products.Group("", adminOnly)
		adminProducts.POST("", productH.Create)
		adminProducts.PUT("/:id", productH.Update)
		adminProducts.DELETE("/:id", productH.Delete)

		cart := v1.Group("/cart")
		cart.GET("", cartH.GetCart)
		cart.POST("/items", cartH.AddItem)
		cart.PUT("/items/:id", cartH.SetQuantity)
		cart.DELETE("/items/:id", cartH.RemoveItem)
		cart.DELETE("", cartH.Clear)

		v1.POST("/checkout", orderH.Checkout)

		orders := v1.Group("/orders")
		orders.GET("", orderH.ListOrders)
		orders.GET("/:id", orderH.GetOrder)

		shippingRoutes := v1.Group("/shipping")
		shippingRoutes.GET("/governorates", shippingH.Governorates)
		shippingRoutes.GET("/quote", shippingH.Quote)

		admin := v1.Group("/admin", adminOnly)
		admin.GET("/orders", orderH.ListAllOrders)
		admin.PATCH("/orders/:id/status", orderH.UpdateStatus)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port, "site", cfg.Site.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	cancel()
	log.Info("server stopped")
}
