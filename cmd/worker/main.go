package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/vela-commerce/vela-commerce/internal/app"
	"github.com/vela-commerce/vela-commerce/internal/catalog"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
	"github.com/vela-commerce/vela-commerce/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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

	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	enqueuer := asynq.NewClient(redisOpts)
	defer func() {
		if err := enqueuer.Close(); err != nil {
			logger.Warn("asynq client close", slog.Any("error", err))
		}
	}()

	backend := upstream.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	index := catalog.NewIndex()
	catalogService := catalog.NewService(backend, index, logger)

	refreshJob := jobs.NewCatalogRefreshJob(catalogService, logger)
	scanJob := jobs.NewLowStockScanJob(index, enqueuer, logger)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: redisOpts,
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskCatalogRefresh, Handler: refreshJob.Handle},
			{Type: jobs.TaskLowStockScan, Handler: scanJob.Handle},
			{Type: jobs.TaskLowStockAlert, Handler: jobs.HandleLowStockAlertTask(logger)},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.CatalogRefreshCron, Task: jobs.NewCatalogRefreshTask()},
			{Spec: cfg.LowStockScanCron, Task: jobs.NewLowStockScanTask()},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker started")
	if err := worker.Run(ctx); err != nil {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
