package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// FeedPort abstracts the backend product feed.
type FeedPort interface {
	FetchProducts(ctx context.Context) ([]upstream.Product, error)
}

// Service refreshes the index from the backend feed. Concurrent
// refresh requests are coalesced into a single fetch.
type Service struct {
	feed   FeedPort
	index  *Index
	logger *slog.Logger
	group  singleflight.Group
}

// NewService builds Service.
func NewService(feed FeedPort, index *Index, logger *slog.Logger) *Service {
	return &Service{feed: feed, index: index, logger: logger}
}

// Index exposes the held index for read-side consumers.
func (s *Service) Index() *Index {
	return s.index
}

// Refresh re-fetches the product feed and replaces the index contents.
// On failure the previous snapshot is kept and a *FetchError returned.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	count, err, _ := s.group.Do("refresh", func() (any, error) {
		products, err := s.feed.FetchProducts(ctx)
		if err != nil {
			return 0, &FetchError{Err: err}
		}

		mapped := make([]Product, 0, len(products))
		for _, p := range products {
			mapped = append(mapped, Product{
				ID:       p.ID,
				Name:     p.Name,
				SKU:      p.SKU,
				Price:    p.Price,
				Stock:    p.Stock,
				Category: p.Category,
			})
		}
		s.index.Load(mapped)
		if s.logger != nil {
			s.logger.Info("catalog refreshed", slog.Int("products", len(mapped)))
		}
		return len(mapped), nil
	})
	if err != nil {
		return 0, err
	}
	return count.(int), nil
}
