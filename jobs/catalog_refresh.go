package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
)

// CatalogRefreshJob keeps the in-memory product index current.
type CatalogRefreshJob struct {
	service *catalog.Service
	logger  *slog.Logger
}

// NewCatalogRefreshJob constructs the job.
func NewCatalogRefreshJob(service *catalog.Service, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{service: service, logger: logger}
}

// Handle processes TaskCatalogRefresh tasks. Fetch failures are
// returned so asynq retries; the stale snapshot keeps serving meanwhile.
func (j *CatalogRefreshJob) Handle(ctx context.Context, _ *asynq.Task) error {
	count, err := j.service.Refresh(ctx)
	if err != nil {
		j.logger.Error("catalog refresh job failed", slog.Any("error", err))
		return err
	}
	j.logger.Info("catalog refresh job done", slog.Int("products", count))
	return nil
}
