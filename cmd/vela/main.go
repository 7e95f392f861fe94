package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vela-commerce/vela-commerce/internal/app"
	"github.com/vela-commerce/vela-commerce/internal/catalog"
	"github.com/vela-commerce/vela-commerce/internal/order"
	"github.com/vela-commerce/vela-commerce/internal/platform/cache"
	"github.com/vela-commerce/vela-commerce/internal/shared"
	"github.com/vela-commerce/vela-commerce/internal/stock"
	"github.com/vela-commerce/vela-commerce/internal/suppliers"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
	"github.com/vela-commerce/vela-commerce/internal/wallet"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	backend := upstream.NewClient(cfg.BackendURL, cfg.BackendTimeout)

	index := catalog.NewIndex()
	catalogService := catalog.NewService(backend, index, logger)
	if _, err := catalogService.Refresh(ctx); err != nil {
		// Serve with an empty snapshot; the refresh job fills it in later.
		logger.Warn("initial catalog refresh failed", slog.Any("error", err))
	}
	catalogHandler := catalog.NewHandler(logger, catalogService)

	stockService := stock.NewService(backend, index, logger)
	stockHandler := stock.NewHandler(logger, stockService)

	cartStore := order.NewCartStore(redisClient, cfg.CartTTL)
	idempotencyStore := shared.NewIdempotencyStore(redisClient, cfg.IdempotencyTTL)
	gateway := order.NewGateway(backend)
	orderService := order.NewService(cartStore, index, gateway, idempotencyStore, logger)
	cartHandler := order.NewHandler(logger, orderService)

	suppliersService := suppliers.NewService(backend, logger)
	suppliersHandler := suppliers.NewHandler(logger, suppliersService)

	walletService := wallet.NewService(backend, logger)
	walletHandler := wallet.NewHandler(logger, walletService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CatalogHandler:   catalogHandler,
		CartHandler:      cartHandler,
		StockHandler:     stockHandler,
		SuppliersHandler: suppliersHandler,
		WalletHandler:    walletHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.Any("error", err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
