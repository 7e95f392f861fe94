package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
)

func TestAddProductDuplicateIsNoop(t *testing.T) {
	b := NewBuilder()

	require.True(t, b.AddProduct(catalog.Product{ID: "A", Name: "Widget", Price: 10}))
	require.False(t, b.AddProduct(catalog.Product{ID: "A", Name: "Widget", Price: 10}))

	require.Len(t, b.Items, 1)
	require.Equal(t, 1, b.Items[0].Quantity)
}

func TestAddProductSnapshotsPrice(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Price: 10})

	// A later catalog price change must not alter the open order.
	require.InDelta(t, 10.0, b.Items[0].UnitPrice, 1e-9)
}

func TestSetQuantity(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Price: 10})

	require.NoError(t, b.SetQuantity("A", 7))
	require.Equal(t, 7, b.Items[0].Quantity)

	require.ErrorIs(t, b.SetQuantity("A", 0), ErrInvalidQuantity)
	require.ErrorIs(t, b.SetQuantity("A", -3), ErrInvalidQuantity)
	require.Equal(t, 7, b.Items[0].Quantity)

	require.ErrorIs(t, b.SetQuantity("missing", 2), ErrLineItemNotFound)
}

func TestRemoveLineItem(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Price: 10})
	b.AddProduct(catalog.Product{ID: "B", Price: 5})

	b.RemoveLineItem("A")
	require.Len(t, b.Items, 1)
	require.Equal(t, "B", b.Items[0].ProductID)

	// Removing an absent line is a no-op.
	b.RemoveLineItem("A")
	require.Len(t, b.Items, 1)
}

func TestChargesRejectNegative(t *testing.T) {
	b := NewBuilder()

	require.ErrorIs(t, b.SetDiscount(-1), ErrInvalidAmount)
	require.ErrorIs(t, b.SetTax(-0.5), ErrInvalidAmount)
	require.InDelta(t, 0.0, b.Discount, 1e-9)
	require.InDelta(t, 0.0, b.Tax, 1e-9)
}

func TestTotals(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Price: 10})
	b.AddProduct(catalog.Product{ID: "B", Price: 5})
	require.NoError(t, b.SetQuantity("A", 2))
	require.NoError(t, b.SetQuantity("B", 3))
	require.NoError(t, b.SetDiscount(5))
	require.NoError(t, b.SetTax(2))

	totals := b.Totals()
	require.InDelta(t, 35.0, totals.Subtotal, 1e-9)
	require.InDelta(t, 32.0, totals.FinalAmount, 1e-9)
}

func TestTotalsDefaultCharges(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Price: 9.99})
	require.NoError(t, b.SetQuantity("A", 4))

	totals := b.Totals()
	require.InDelta(t, 39.96, totals.Subtotal, 1e-9)
	require.InDelta(t, 39.96, totals.FinalAmount, 1e-9)
}

func TestBuildValidation(t *testing.T) {
	b := NewBuilder()

	_, err := b.Build(Customer{}, "", "")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.ElementsMatch(t,
		[]string{"customerName", "customerPhone", "shippingAddress", "lineItems", "paymentMethod"},
		valErr.Missing,
	)

	b.AddProduct(catalog.Product{ID: "A", Price: 10})
	_, err = b.Build(Customer{Phone: "0123", Address: "12 Main St"}, PaymentCash, "")
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, []string{"customerName"}, valErr.Missing)
}

func TestBuildSucceeds(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Name: "Widget", Price: 9.99})
	require.NoError(t, b.SetQuantity("A", 4))

	customer := Customer{Name: "Ada", Phone: "0123", Email: "ada@example.com", Address: "12 Main St"}
	ord, err := b.Build(customer, PaymentBankTransfer, "leave at door")
	require.NoError(t, err)

	require.NotEmpty(t, ord.OrderNumber)
	require.Contains(t, ord.OrderNumber, "ORD-")
	require.Equal(t, FulfillmentPending, ord.FulfillmentStatus)
	require.Equal(t, customer, ord.Customer)
	require.InDelta(t, 39.96, ord.TotalAmount, 1e-9)
	require.InDelta(t, 39.96, ord.FinalAmount, 1e-9)
	require.Len(t, ord.LineItems, 1)

	// The snapshot is detached from the builder.
	ord.LineItems[0].Quantity = 99
	require.Equal(t, 4, b.Items[0].Quantity)
}

func TestBuildRejectsUnknownPaymentMethod(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Price: 1})

	_, err := b.Build(Customer{Name: "Ada", Phone: "0123", Address: "12 Main St"}, "Barter", "")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, []string{"paymentMethod"}, valErr.Missing)
}

func TestOrderNumbersUnique(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(catalog.Product{ID: "A", Price: 1})
	customer := Customer{Name: "Ada", Phone: "0123", Address: "12 Main St"}

	first, err := b.Build(customer, PaymentCash, "")
	require.NoError(t, err)
	second, err := b.Build(customer, PaymentCash, "")
	require.NoError(t, err)
	require.NotEqual(t, first.OrderNumber, second.OrderNumber)
}
