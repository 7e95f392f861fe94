package order

// AddItemRequest adds one product to a cart.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// SetQuantityRequest overwrites a line item quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ChargesRequest sets discount and tax for the cart.
type ChargesRequest struct {
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
}

// CheckoutRequest finalizes a cart into an order. Required-field
// enumeration happens in Builder.Build so the response can list every
// missing field at once; the tags here guard formats only.
type CheckoutRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail" validate:"omitempty,email"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod" validate:"omitempty,oneof=Cash BankTransfer CashOnDelivery"`
	Notes           string `json:"notes"`
}
