package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

type fakeFeed struct {
	products []upstream.Product
	err      error
	calls    int
}

func (f *fakeFeed) FetchProducts(context.Context) ([]upstream.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRefreshLoadsFeed(t *testing.T) {
	feed := &fakeFeed{products: []upstream.Product{
		{ID: "p1", Name: "Steel Bolt", SKU: "SB-100", Price: 0.5, Stock: 120, Category: "fasteners"},
		{ID: "p2", Name: "Copper Wire", SKU: "CW-200", Price: 3.2, Stock: 4, Category: "electrical"},
	}}
	ix := NewIndex()
	svc := NewService(feed, ix, discardLogger())

	count, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)

	p, ok := ix.Get("p1")
	require.True(t, ok)
	require.Equal(t, "Steel Bolt", p.Name)
	require.Equal(t, "SB-100", p.SKU)
	require.Equal(t, "fasteners", p.Category)
	require.Equal(t, 120, p.Stock)
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	feed := &fakeFeed{products: []upstream.Product{{ID: "p1", Name: "Steel Bolt", Stock: 5}}}
	ix := NewIndex()
	svc := NewService(feed, ix, discardLogger())

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	feed.err = errors.New("connection refused")
	_, err = svc.Refresh(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)

	// The stale snapshot remains queryable.
	require.Equal(t, 1, ix.Len())
	_, ok := ix.Get("p1")
	require.True(t, ok)
}
