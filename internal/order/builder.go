package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
)

// Builder accumulates line items and charges for one cart session.
// One logical user session operates on one Builder; the struct is
// JSON-serializable so the cart store can persist it between requests.
type Builder struct {
	Items    []LineItem `json:"items"`
	Discount float64    `json:"discount"`
	Tax      float64    `json:"tax"`
}

// NewBuilder returns an empty builder with zero discount and tax.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddProduct appends a line item with quantity 1 and the product's
// current price. Adding a product already present is a no-op: the
// quantity is not bumped, matching the storefront's observed behavior.
// Reports whether a line was added.
func (b *Builder) AddProduct(p catalog.Product) bool {
	for _, item := range b.Items {
		if item.ProductID == p.ID {
			return false
		}
	}
	b.Items = append(b.Items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  1,
		UnitPrice: p.Price,
	})
	return true
}

// SetQuantity overwrites the quantity of an existing line item. No
// upper bound is enforced against current stock; the backend performs
// the authoritative stock check on submission.
func (b *Builder) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			b.Items[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineItemNotFound
}

// RemoveLineItem deletes the matching line item; no-op when absent.
func (b *Builder) RemoveLineItem(productID string) {
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			return
		}
	}
}

// SetDiscount sets the operator-entered discount.
func (b *Builder) SetDiscount(value float64) error {
	if value < 0 {
		return ErrInvalidAmount
	}
	b.Discount = value
	return nil
}

// SetTax sets the operator-entered tax.
func (b *Builder) SetTax(value float64) error {
	if value < 0 {
		return ErrInvalidAmount
	}
	b.Tax = value
	return nil
}

// Totals recomputes the derived amounts from scratch. Carts are small;
// there is nothing to cache.
func (b *Builder) Totals() Totals {
	var subtotal float64
	for _, item := range b.Items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	return Totals{
		Subtotal:    subtotal,
		FinalAmount: subtotal - b.Discount + b.Tax,
	}
}

// Build validates required fields and returns an immutable Order
// snapshot with a freshly generated order number. The builder itself
// is left untouched so a failed submission can be retried.
func (b *Builder) Build(customer Customer, method PaymentMethod, notes string) (Order, error) {
	var missing []string
	if customer.Name == "" {
		missing = append(missing, "customerName")
	}
	if customer.Phone == "" {
		missing = append(missing, "customerPhone")
	}
	if customer.Address == "" {
		missing = append(missing, "shippingAddress")
	}
	if len(b.Items) == 0 {
		missing = append(missing, "lineItems")
	}
	if _, ok := ParsePaymentMethod(string(method)); !ok {
		missing = append(missing, "paymentMethod")
	}
	if len(missing) > 0 {
		return Order{}, &ValidationError{Missing: missing}
	}

	items := make([]LineItem, len(b.Items))
	copy(items, b.Items)

	totals := b.Totals()
	now := time.Now()

	return Order{
		OrderNumber:       generateOrderNumber(now),
		LineItems:         items,
		Customer:          customer,
		Discount:          b.Discount,
		Tax:               b.Tax,
		TotalAmount:       totals.Subtotal,
		FinalAmount:       totals.FinalAmount,
		PaymentMethod:     method,
		Notes:             notes,
		FulfillmentStatus: FulfillmentPending,
		CreatedAt:         now,
	}, nil
}

// generateOrderNumber keeps the backend's ORD-<millis> shape and adds a
// random suffix so two builds within the same millisecond stay unique.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
