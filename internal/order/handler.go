package order

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vela-commerce/vela-commerce/internal/platform/httpx"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// Handler exposes cart sessions and checkout over HTTP.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes attaches cart routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.CreateCart)
	r.Get("/{cartID}", h.GetCart)
	r.Post("/{cartID}/items", h.AddItem)
	r.Put("/{cartID}/items/{productID}", h.SetQuantity)
	r.Delete("/{cartID}/items/{productID}", h.RemoveItem)
	r.Put("/{cartID}/charges", h.SetCharges)
	r.Post("/{cartID}/checkout", h.Checkout)
}

// CreateCart opens a new cart session.
func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := h.service.CreateCart(r.Context())
	if err != nil {
		h.logger.Error("create cart failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"cartId": cartID})
}

// GetCart returns cart contents and totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetCart(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// AddItem adds a product to the cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "productId is required")
		return
	}

	view, err := h.service.AddItem(r.Context(), chi.URLParam(r, "cartID"), req.ProductID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// SetQuantity overwrites a line item quantity.
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req SetQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}

	view, err := h.service.SetQuantity(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// RemoveItem deletes a line item from the cart.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// SetCharges sets discount and tax.
func (h *Handler) SetCharges(w http.ResponseWriter, r *http.Request) {
	var req ChargesRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}

	view, err := h.service.SetCharges(r.Context(), chi.URLParam(r, "cartID"), req.Discount, req.Tax)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Checkout finalizes the cart and submits the order.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", validationDetail(err))
		return
	}

	customer := Customer{
		Name:    req.CustomerName,
		Phone:   req.CustomerPhone,
		Email:   req.CustomerEmail,
		Address: req.ShippingAddress,
	}

	conf, err := h.service.Checkout(r.Context(), chi.URLParam(r, "cartID"), customer, PaymentMethod(req.PaymentMethod), req.Notes)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, conf)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var valErr *ValidationError
	var subErr *upstream.SubmissionError
	switch {
	case errors.Is(err, ErrCartNotFound), errors.Is(err, ErrLineItemNotFound), errors.Is(err, ErrUnknownProduct):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidAmount):
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	case errors.Is(err, ErrDuplicateSubmission):
		httpx.Problem(w, http.StatusConflict, "Duplicate Submission", err.Error())
	case errors.As(err, &valErr):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", valErr.Error())
	case errors.As(err, &subErr):
		h.logger.Error("order submission failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadGateway, "Upstream Failure", subErr.Message)
	default:
		h.logger.Error("cart operation failed", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "invalid request"
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
