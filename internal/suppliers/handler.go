package suppliers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vela-commerce/vela-commerce/internal/platform/httpx"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// CreateSupplierRequest is the supplier creation payload.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
}

// Handler exposes supplier management over HTTP.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes attaches supplier routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
}

// List returns all suppliers from the backend.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.service.List(r.Context())
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			h.logger.Error("list suppliers failed", slog.Any("error", err))
			httpx.Problem(w, http.StatusBadGateway, "Upstream Failure", fetchErr.Error())
			return
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"suppliers": suppliers,
		"total":     len(suppliers),
	})
}

// Create registers a new supplier.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		var subErr *upstream.SubmissionError
		if errors.As(err, &subErr) {
			h.logger.Error("create supplier failed", slog.Any("error", err))
			httpx.Problem(w, http.StatusBadGateway, "Upstream Failure", subErr.Message)
			return
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
