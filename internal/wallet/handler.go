package wallet

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vela-commerce/vela-commerce/internal/platform/httpx"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// DepositRequest is the top-up payload.
type DepositRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"method" validate:"required"`
	TransactionID string  `json:"transactionId" validate:"required"`
}

// Handler exposes wallet deposits over HTTP.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes attaches wallet routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/deposits", h.Create)
}

// Create submits a deposit.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	conf, err := h.service.Submit(r.Context(), Deposit{
		Email:         req.Email,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		if errors.Is(err, ErrAmountTooSmall) {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
			return
		}
		var subErr *upstream.SubmissionError
		if errors.As(err, &subErr) {
			h.logger.Error("deposit failed", slog.Any("error", err))
			httpx.Problem(w, http.StatusBadGateway, "Upstream Failure", subErr.Message)
			return
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, conf)
}
