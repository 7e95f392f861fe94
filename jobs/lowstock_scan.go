package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
)

// Enqueuer abstracts asynq.Client for task submission.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// LowStockScanJob scans the catalog index and raises an alert task
// when any product sits below the low-stock threshold.
type LowStockScanJob struct {
	index    *catalog.Index
	enqueuer Enqueuer
	logger   *slog.Logger
}

// NewLowStockScanJob constructs the job.
func NewLowStockScanJob(index *catalog.Index, enqueuer Enqueuer, logger *slog.Logger) *LowStockScanJob {
	return &LowStockScanJob{index: index, enqueuer: enqueuer, logger: logger}
}

// Handle processes TaskLowStockScan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, _ *asynq.Task) error {
	low := j.index.LowStock()
	if len(low) == 0 {
		return nil
	}

	payload := LowStockAlertPayload{Products: make([]LowStockProduct, 0, len(low))}
	for _, p := range low {
		payload.Products = append(payload.Products, LowStockProduct{
			ID:    p.ID,
			Name:  p.Name,
			SKU:   p.SKU,
			Stock: p.Stock,
		})
	}

	task, err := NewLowStockAlertTask(payload)
	if err != nil {
		return err
	}
	if _, err := j.enqueuer.EnqueueContext(ctx, task, asynq.Queue(QueueDefault)); err != nil {
		return err
	}
	j.logger.Info("low stock alert raised", slog.Int("products", len(low)))
	return nil
}

// HandleLowStockAlertTask processes TaskLowStockAlert tasks. For now
// the alert lands in the log; the notification channel follows the
// same placeholder pattern as transactional mail.
func HandleLowStockAlertTask(logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload LowStockAlertPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		for _, p := range payload.Products {
			logger.Warn("low stock",
				slog.String("product_id", p.ID),
				slog.String("name", p.Name),
				slog.String("sku", p.SKU),
				slog.Int("stock", p.Stock),
			)
		}
		return nil
	}
}
