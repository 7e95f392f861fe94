// Package order implements cart sessions, order assembly and the
// submission gateway against the commerce backend.
package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PaymentMethod enumerates accepted payment methods.
type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "Cash"
	PaymentBankTransfer   PaymentMethod = "BankTransfer"
	PaymentCashOnDelivery PaymentMethod = "CashOnDelivery"
)

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentCash, PaymentBankTransfer, PaymentCashOnDelivery:
		return PaymentMethod(raw), true
	default:
		return "", false
	}
}

// FulfillmentPending is the initial fulfillment status of every order.
const FulfillmentPending = "Pending"

// LineItem is one product entry within an in-progress order. UnitPrice
// is snapshotted at add-time so later catalog price changes do not
// retroactively alter an open order.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Customer holds order contact details. Email is optional.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// Totals carries the derived order amounts.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	FinalAmount float64 `json:"finalAmount"`
}

// Order is an immutable snapshot produced by Builder.Build. It is
// submitted exactly once; resubmission means building a new Order.
type Order struct {
	OrderNumber       string        `json:"orderNumber"`
	LineItems         []LineItem    `json:"lineItems"`
	Customer          Customer      `json:"customer"`
	Discount          float64       `json:"discount"`
	Tax               float64       `json:"tax"`
	TotalAmount       float64       `json:"totalAmount"`
	FinalAmount       float64       `json:"finalAmount"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	Notes             string        `json:"notes,omitempty"`
	FulfillmentStatus string        `json:"fulfillmentStatus"`
	CreatedAt         time.Time     `json:"createdAt"`
}

var (
	// ErrInvalidQuantity rejects quantities below one.
	ErrInvalidQuantity = errors.New("order: quantity must be at least 1")
	// ErrInvalidAmount rejects negative discount or tax values.
	ErrInvalidAmount = errors.New("order: amount must not be negative")
	// ErrLineItemNotFound indicates a quantity edit for an absent line.
	ErrLineItemNotFound = errors.New("order: line item not found")
	// ErrUnknownProduct indicates an add for a product the catalog does not hold.
	ErrUnknownProduct = errors.New("order: unknown product")
	// ErrCartNotFound indicates an expired or never-created cart session.
	ErrCartNotFound = errors.New("order: cart not found")
	// ErrDuplicateSubmission refuses a second submit of an already
	// accepted cart.
	ErrDuplicateSubmission = errors.New("order: cart already submitted")
)

// ValidationError enumerates the required order fields that are missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order: missing required fields: %s", strings.Join(e.Missing, ", "))
}
