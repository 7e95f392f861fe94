package stock

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// ErrProductNotFound indicates an unknown product id.
var ErrProductNotFound = errors.New("stock: product not found")

// BackendPort abstracts the backend product update call.
type BackendPort interface {
	UpdateProduct(ctx context.Context, id string, patch upstream.ProductPatch) (upstream.Product, error)
}

// Service applies stock adjustments. It confirms the new figure with
// the backend before mutating the local catalog copy, so the index
// never shows a value the backend rejected.
type Service struct {
	backend BackendPort
	index   *catalog.Index
	logger  *slog.Logger
}

// NewService builds Service.
func NewService(backend BackendPort, index *catalog.Index, logger *slog.Logger) *Service {
	return &Service{backend: backend, index: index, logger: logger}
}

// Adjust applies a signed delta to one product's stock.
func (s *Service) Adjust(ctx context.Context, productID string, delta int) (Adjustment, error) {
	product, ok := s.index.Get(productID)
	if !ok {
		return Adjustment{}, ErrProductNotFound
	}

	adj, err := Adjust(product.ID, product.Stock, delta)
	if err != nil {
		return Adjustment{}, err
	}

	newStock := adj.ResultingStock
	updated, err := s.backend.UpdateProduct(ctx, product.ID, upstream.ProductPatch{Stock: &newStock})
	if err != nil {
		return Adjustment{}, upstream.NewSubmissionError(err, "stock update failed")
	}

	s.index.SetStock(product.ID, updated.Stock)
	if s.logger != nil {
		s.logger.Info("stock adjusted",
			slog.String("product_id", product.ID),
			slog.Int("delta", delta),
			slog.Int("stock", updated.Stock),
		)
	}

	adj.ResultingStock = updated.Stock
	adj.Status = Classify(updated.Stock)
	return adj, nil
}
