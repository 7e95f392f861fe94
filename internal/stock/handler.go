package stock

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vela-commerce/vela-commerce/internal/platform/httpx"
	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

// Handler exposes stock adjustments over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches stock routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/{productID}/adjustments", h.Adjust)
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

// Adjust applies a signed stock delta to a product.
func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req adjustRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Input", "malformed request body")
		return
	}

	adj, err := h.service.Adjust(r.Context(), productID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		case errors.Is(err, ErrZeroDelta):
			httpx.Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
		default:
			var subErr *upstream.SubmissionError
			if errors.As(err, &subErr) {
				h.logger.Error("stock update failed", slog.String("product_id", productID), slog.Any("error", err))
				httpx.Problem(w, http.StatusBadGateway, "Upstream Failure", subErr.Message)
				return
			}
			httpx.RespondError(w, err)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, adj)
}
