package stock

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

type fakeBackend struct {
	lastID    string
	lastPatch upstream.ProductPatch
	updated   upstream.Product
	err       error
}

func (f *fakeBackend) UpdateProduct(_ context.Context, id string, patch upstream.ProductPatch) (upstream.Product, error) {
	f.lastID = id
	f.lastPatch = patch
	if f.err != nil {
		return upstream.Product{}, f.err
	}
	return f.updated, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIndex(products ...catalog.Product) *catalog.Index {
	ix := catalog.NewIndex()
	ix.Load(products)
	return ix
}

func TestServiceAdjustConfirmsBeforeUpdatingIndex(t *testing.T) {
	ix := newIndex(catalog.Product{ID: "p1", Name: "Widget", Stock: 12})
	backend := &fakeBackend{updated: upstream.Product{ID: "p1", Name: "Widget", Stock: 8}}
	svc := NewService(backend, ix, discardLogger())

	adj, err := svc.Adjust(context.Background(), "p1", -4)
	require.NoError(t, err)

	require.Equal(t, "p1", backend.lastID)
	require.NotNil(t, backend.lastPatch.Stock)
	require.Equal(t, 8, *backend.lastPatch.Stock)
	require.Nil(t, backend.lastPatch.Price)

	require.Equal(t, 12, adj.PreviousStock)
	require.Equal(t, 8, adj.ResultingStock)
	require.Equal(t, StatusLowStock, adj.Status)

	product, ok := ix.Get("p1")
	require.True(t, ok)
	require.Equal(t, 8, product.Stock)
}

func TestServiceAdjustClampSendsZero(t *testing.T) {
	ix := newIndex(catalog.Product{ID: "p1", Stock: 3})
	backend := &fakeBackend{updated: upstream.Product{ID: "p1", Stock: 0}}
	svc := NewService(backend, ix, discardLogger())

	adj, err := svc.Adjust(context.Background(), "p1", -10)
	require.NoError(t, err)
	require.Equal(t, 0, *backend.lastPatch.Stock)
	require.Equal(t, 0, adj.ResultingStock)
	require.Equal(t, StatusOutOfStock, adj.Status)
}

func TestServiceAdjustUnknownProduct(t *testing.T) {
	svc := NewService(&fakeBackend{}, newIndex(), discardLogger())

	_, err := svc.Adjust(context.Background(), "missing", 5)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestServiceAdjustZeroDelta(t *testing.T) {
	ix := newIndex(catalog.Product{ID: "p1", Stock: 3})
	backend := &fakeBackend{}
	svc := NewService(backend, ix, discardLogger())

	_, err := svc.Adjust(context.Background(), "p1", 0)
	require.ErrorIs(t, err, ErrZeroDelta)
	require.Empty(t, backend.lastID)
}

func TestServiceAdjustBackendFailureLeavesIndexUntouched(t *testing.T) {
	ix := newIndex(catalog.Product{ID: "p1", Stock: 12})
	backend := &fakeBackend{err: &upstream.APIError{StatusCode: 400, Message: "Product not found"}}
	svc := NewService(backend, ix, discardLogger())

	_, err := svc.Adjust(context.Background(), "p1", -4)

	var subErr *upstream.SubmissionError
	require.ErrorAs(t, err, &subErr)
	require.Equal(t, "Product not found", subErr.Message)

	product, ok := ix.Get("p1")
	require.True(t, ok)
	require.Equal(t, 12, product.Stock)
}
