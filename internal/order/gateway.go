package order

import (
	"context"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// BackendPort abstracts the backend order-creation call.
type BackendPort interface {
	CreateOrder(ctx context.Context, order upstream.OrderRequest) (upstream.OrderConfirmation, error)
}

// Confirmation is the relayed result of an accepted order.
type Confirmation struct {
	OrderNumber    string   `json:"orderNumber"`
	Message        string   `json:"message"`
	UpdatedBalance *float64 `json:"updatedBalance,omitempty"`
}

// Gateway translates a finalized Order into the backend's
// order-creation contract. It performs exactly one outbound request
// per Submit and never retries: the backend deducts stock on
// acceptance, so a silent retry could deduct twice.
type Gateway struct {
	backend BackendPort
}

// NewGateway constructs a Gateway.
func NewGateway(backend BackendPort) *Gateway {
	return &Gateway{backend: backend}
}

// Submit serializes and sends the order, relaying the backend outcome.
func (g *Gateway) Submit(ctx context.Context, order Order) (Confirmation, error) {
	products := make([]upstream.OrderProduct, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		products = append(products, upstream.OrderProduct{
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}

	req := upstream.OrderRequest{
		OrderNumber:       order.OrderNumber,
		CustomerName:      order.Customer.Name,
		CustomerPhone:     order.Customer.Phone,
		CustomerEmail:     order.Customer.Email,
		Products:          products,
		TotalAmount:       order.TotalAmount,
		Discount:          order.Discount,
		Tax:               order.Tax,
		FinalAmount:       order.FinalAmount,
		ShippingAddress:   order.Customer.Address,
		PaymentMethod:     string(order.PaymentMethod),
		Notes:             order.Notes,
		FulfillmentStatus: order.FulfillmentStatus,
	}

	conf, err := g.backend.CreateOrder(ctx, req)
	if err != nil {
		return Confirmation{}, upstream.NewSubmissionError(err, "order submission failed")
	}

	return Confirmation{
		OrderNumber:    order.OrderNumber,
		Message:        conf.Message,
		UpdatedBalance: conf.UpdatedBalance,
	}, nil
}
