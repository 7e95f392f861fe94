package upstream

// Product mirrors a catalog product as the commerce backend returns it.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// ProductPatch carries a partial product update. Nil fields are omitted
// from the request body.
type ProductPatch struct {
	Name     *string  `json:"name,omitempty"`
	SKU      *string  `json:"sku,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Stock    *int     `json:"stock,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// Supplier mirrors a supplier record on the backend.
type Supplier struct {
	ID            string `json:"_id,omitempty"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// OrderProduct is a single line of the order-creation payload.
type OrderProduct struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderRequest is the order-creation contract of the backend.
type OrderRequest struct {
	OrderNumber       string         `json:"orderNumber"`
	CustomerName      string         `json:"customerName"`
	CustomerPhone     string         `json:"customerPhone"`
	CustomerEmail     string         `json:"customerEmail,omitempty"`
	Products          []OrderProduct `json:"products"`
	TotalAmount       float64        `json:"totalAmount"`
	Discount          float64        `json:"discount"`
	Tax               float64        `json:"tax"`
	FinalAmount       float64        `json:"finalAmount"`
	ShippingAddress   string         `json:"shippingAddress"`
	PaymentMethod     string         `json:"paymentMethod"`
	Notes             string         `json:"notes,omitempty"`
	FulfillmentStatus string         `json:"fulfillmentStatus"`
}

// OrderConfirmation is the backend's order-creation response. The
// balance field is only present for wallet-funded accounts.
type OrderConfirmation struct {
	Message        string   `json:"message"`
	UpdatedBalance *float64 `json:"updatedBalance,omitempty"`
}

// DepositRequest is the wallet top-up payload.
type DepositRequest struct {
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	TransactionID string  `json:"transactionId"`
}

// DepositConfirmation acknowledges a submitted deposit.
type DepositConfirmation struct {
	Message string `json:"message"`
}
