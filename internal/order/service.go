package order

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
	"github.com/vela-commerce/vela-commerce/internal/shared"
)

const idempotencyModule = "orders"

// CartView is the read model of a cart: its lines plus derived totals.
type CartView struct {
	CartID      string     `json:"cartId"`
	Items       []LineItem `json:"items"`
	Discount    float64    `json:"discount"`
	Tax         float64    `json:"tax"`
	Subtotal    float64    `json:"subtotal"`
	FinalAmount float64    `json:"finalAmount"`
}

// Service coordinates cart sessions against the catalog index and the
// submission gateway.
type Service struct {
	store       *CartStore
	index       *catalog.Index
	gateway     *Gateway
	idempotency *shared.IdempotencyStore
	logger      *slog.Logger
}

// NewService builds Service.
func NewService(store *CartStore, index *catalog.Index, gateway *Gateway, idem *shared.IdempotencyStore, logger *slog.Logger) *Service {
	return &Service{store: store, index: index, gateway: gateway, idempotency: idem, logger: logger}
}

// CreateCart opens a new cart session.
func (s *Service) CreateCart(ctx context.Context) (string, error) {
	return s.store.Create(ctx)
}

// GetCart returns the cart contents and totals.
func (s *Service) GetCart(ctx context.Context, cartID string) (CartView, error) {
	builder, err := s.store.Get(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	return s.view(cartID, builder), nil
}

// AddItem adds a catalog product to the cart. Adding a product already
// in the cart leaves it unchanged.
func (s *Service) AddItem(ctx context.Context, cartID, productID string) (CartView, error) {
	builder, err := s.store.Get(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}

	product, ok := s.index.Get(productID)
	if !ok {
		return CartView{}, ErrUnknownProduct
	}

	if builder.AddProduct(product) {
		if err := s.store.Save(ctx, cartID, builder); err != nil {
			return CartView{}, err
		}
	}
	return s.view(cartID, builder), nil
}

// SetQuantity overwrites a line item's quantity.
func (s *Service) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (CartView, error) {
	return s.mutate(ctx, cartID, func(b *Builder) error {
		return b.SetQuantity(productID, quantity)
	})
}

// RemoveItem deletes a line item.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) (CartView, error) {
	return s.mutate(ctx, cartID, func(b *Builder) error {
		b.RemoveLineItem(productID)
		return nil
	})
}

// SetCharges sets the operator-entered discount and tax.
func (s *Service) SetCharges(ctx context.Context, cartID string, discount, tax float64) (CartView, error) {
	return s.mutate(ctx, cartID, func(b *Builder) error {
		if err := b.SetDiscount(discount); err != nil {
			return err
		}
		return b.SetTax(tax)
	})
}

// Checkout builds the order and submits it through the gateway. On
// failure the cart is left intact for a manual retry; on success the
// cart is deleted and a second checkout of the same cart refused.
func (s *Service) Checkout(ctx context.Context, cartID string, customer Customer, method PaymentMethod, notes string) (Confirmation, error) {
	builder, err := s.store.Get(ctx, cartID)
	if err != nil {
		return Confirmation{}, err
	}

	ord, err := builder.Build(customer, method, notes)
	if err != nil {
		return Confirmation{}, err
	}

	if err := s.idempotency.CheckAndInsert(ctx, cartID, idempotencyModule); err != nil {
		if errors.Is(err, shared.ErrIdempotencyConflict) {
			return Confirmation{}, ErrDuplicateSubmission
		}
		return Confirmation{}, err
	}

	conf, err := s.gateway.Submit(ctx, ord)
	if err != nil {
		// Release the key so the user can resubmit after fixing the cause.
		if delErr := s.idempotency.Delete(ctx, cartID, idempotencyModule); delErr != nil && s.logger != nil {
			s.logger.Warn("release idempotency key", slog.String("cart_id", cartID), slog.Any("error", delErr))
		}
		return Confirmation{}, err
	}

	if err := s.store.Delete(ctx, cartID); err != nil && s.logger != nil {
		s.logger.Warn("delete cart after checkout", slog.String("cart_id", cartID), slog.Any("error", err))
	}
	if s.logger != nil {
		s.logger.Info("order submitted",
			slog.String("order_number", conf.OrderNumber),
			slog.Int("lines", len(ord.LineItems)),
			slog.Float64("final_amount", ord.FinalAmount),
		)
	}
	return conf, nil
}

func (s *Service) mutate(ctx context.Context, cartID string, fn func(*Builder) error) (CartView, error) {
	builder, err := s.store.Get(ctx, cartID)
	if err != nil {
		return CartView{}, err
	}
	if err := fn(builder); err != nil {
		return CartView{}, err
	}
	if err := s.store.Save(ctx, cartID, builder); err != nil {
		return CartView{}, err
	}
	return s.view(cartID, builder), nil
}

func (s *Service) view(cartID string, builder *Builder) CartView {
	totals := builder.Totals()
	items := builder.Items
	if items == nil {
		items = []LineItem{}
	}
	return CartView{
		CartID:      cartID,
		Items:       items,
		Discount:    builder.Discount,
		Tax:         builder.Tax,
		Subtotal:    totals.Subtotal,
		FinalAmount: totals.FinalAmount,
	}
}
