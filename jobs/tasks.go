package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskCatalogRefresh re-fetches the product feed into the index.
	TaskCatalogRefresh = "catalog:refresh"
	// TaskLowStockScan checks the index for products running low.
	TaskLowStockScan = "stock:low_scan"
	// TaskLowStockAlert notifies operators about low-stock products.
	TaskLowStockAlert = "stock:low_alert"
)

// LowStockProduct identifies one product in a low-stock alert.
type LowStockProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

// LowStockAlertPayload lists the products that triggered an alert.
type LowStockAlertPayload struct {
	Products []LowStockProduct `json:"products"`
}

// NewCatalogRefreshTask constructs the catalog refresh task.
func NewCatalogRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskCatalogRefresh, nil)
}

// NewLowStockScanTask constructs the low-stock scan task.
func NewLowStockScanTask() *asynq.Task {
	return asynq.NewTask(TaskLowStockScan, nil)
}

// NewLowStockAlertTask constructs an alert task for the given products.
func NewLowStockAlertTask(payload LowStockAlertPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockAlert, data), nil
}
