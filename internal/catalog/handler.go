package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vela-commerce/vela-commerce/internal/platform/httpx"
)

// Handler exposes catalog queries over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches catalog routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/low-stock", h.LowStock)
	r.Post("/refresh", h.Refresh)
}

// List returns products, optionally filtered by text and availability.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	index := h.service.Index()

	products := index.FilterByText(r.URL.Query().Get("q"))
	if r.URL.Query().Get("available") == "1" {
		filtered := products[:0:0]
		for _, p := range products {
			if p.Stock > 0 {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

// LowStock returns products below the low-stock threshold.
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	products := h.service.Index().LowStock()
	httpx.JSON(w, http.StatusOK, map[string]any{
		"products":  products,
		"total":     len(products),
		"threshold": LowStockThreshold,
	})
}

// Refresh re-fetches the product feed from the backend.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Refresh(r.Context())
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			h.logger.Error("catalog refresh failed", slog.Any("error", err))
			httpx.Problem(w, http.StatusBadGateway, "Upstream Failure", fetchErr.Error())
			return
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"products": count})
}
