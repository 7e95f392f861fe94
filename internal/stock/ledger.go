// Package stock implements the stock ledger: status classification and
// bounded, clamped stock adjustments. The ledger itself never touches
// the network; persistence is the service's concern.
package stock

import (
	"errors"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
)

// Status classifies a stock level.
type Status string

const (
	// StatusOutOfStock means zero units on hand.
	StatusOutOfStock Status = "OUT_OF_STOCK"
	// StatusLowStock means above zero but below the low-stock threshold.
	StatusLowStock Status = "LOW_STOCK"
	// StatusInStock means at or above the threshold.
	StatusInStock Status = "IN_STOCK"
)

// ErrZeroDelta rejects adjustments that would not change anything.
// A zero delta is treated as an operator mistake, not a no-op.
var ErrZeroDelta = errors.New("stock: delta must be non-zero")

// Adjustment records one applied stock delta. ResultingStock is always
// clamped at zero.
type Adjustment struct {
	ProductID      string `json:"productId"`
	Delta          int    `json:"delta"`
	PreviousStock  int    `json:"previousStock"`
	ResultingStock int    `json:"resultingStock"`
	Status         Status `json:"status"`
}

// Classify maps a stock level to its status.
func Classify(stock int) Status {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock < catalog.LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Adjust computes the clamped result of applying delta to stock.
func Adjust(productID string, stock, delta int) (Adjustment, error) {
	if delta == 0 {
		return Adjustment{}, ErrZeroDelta
	}

	resulting := stock + delta
	if resulting < 0 {
		resulting = 0
	}

	return Adjustment{
		ProductID:      productID,
		Delta:          delta,
		PreviousStock:  stock,
		ResultingStock: resulting,
		Status:         Classify(resulting),
	}, nil
}
