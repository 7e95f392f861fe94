package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

type fakeBackend struct {
	products  []upstream.Product
	suppliers []upstream.Supplier
	lastPatch upstream.ProductPatch
}

func (f *fakeBackend) FetchProducts(context.Context) ([]upstream.Product, error) {
	return f.products, nil
}

func (f *fakeBackend) UpdateProduct(_ context.Context, id string, patch upstream.ProductPatch) (upstream.Product, error) {
	f.lastPatch = patch
	for _, p := range f.products {
		if p.ID == id {
			p.Stock = *patch.Stock
			return p, nil
		}
	}
	return upstream.Product{}, &upstream.APIError{StatusCode: 404, Message: "Product not found"}
}

func (f *fakeBackend) FetchSuppliers(context.Context) ([]upstream.Supplier, error) {
	return f.suppliers, nil
}

func TestProductsCommand(t *testing.T) {
	backend := &fakeBackend{products: []upstream.Product{
		{ID: "p1", Name: "Steel Bolt", SKU: "SB-100", Price: 0.5, Stock: 120},
		{ID: "p2", Name: "Copper Wire", SKU: "CW-200", Price: 3.2, Stock: 4},
	}}

	var out bytes.Buffer
	root := NewRootCommand(&out, backend)
	root.SetArgs([]string{"products"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "Steel Bolt")
	require.Contains(t, out.String(), "Copper Wire")
	require.Contains(t, out.String(), "LOW_STOCK")
}

func TestProductsCommandLowStockFlag(t *testing.T) {
	backend := &fakeBackend{products: []upstream.Product{
		{ID: "p1", Name: "Steel Bolt", Stock: 120},
		{ID: "p2", Name: "Copper Wire", Stock: 4},
	}}

	var out bytes.Buffer
	root := NewRootCommand(&out, backend)
	root.SetArgs([]string{"products", "--low-stock"})
	require.NoError(t, root.Execute())

	require.NotContains(t, out.String(), "Steel Bolt")
	require.Contains(t, out.String(), "Copper Wire")
}

func TestAdjustCommand(t *testing.T) {
	backend := &fakeBackend{products: []upstream.Product{
		{ID: "p1", Name: "Steel Bolt", Stock: 12},
	}}

	var out bytes.Buffer
	root := NewRootCommand(&out, backend)
	root.SetArgs([]string{"adjust", "p1", "--", "-4"})
	require.NoError(t, root.Execute())

	require.NotNil(t, backend.lastPatch.Stock)
	require.Equal(t, 8, *backend.lastPatch.Stock)
	require.Contains(t, out.String(), "12 -> 8")
}

func TestAdjustCommandUnknownProduct(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand(&out, &fakeBackend{})
	root.SetArgs([]string{"adjust", "ghost", "1"})
	require.Error(t, root.Execute())
}

func TestSuppliersCommand(t *testing.T) {
	backend := &fakeBackend{suppliers: []upstream.Supplier{
		{ID: "s1", Name: "Acme Metals"},
	}}

	var out bytes.Buffer
	root := NewRootCommand(&out, backend)
	root.SetArgs([]string{"suppliers"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "Acme Metals")
}
