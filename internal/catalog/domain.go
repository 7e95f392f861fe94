package catalog

import "fmt"

// LowStockThreshold is the stock level below which a product counts as
// running low. Fixed domain policy, not configuration.
const LowStockThreshold = 10

// Product is the in-memory catalog record. Stock is mutated only
// through stock-ledger adjustments; products are created and deleted
// on the backend.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// FetchError reports a failed product feed load. The previously held
// snapshot stays in place so callers can keep serving stale data.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("catalog: fetch products: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
