package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vela-commerce/vela-commerce/internal/catalog"
	"github.com/vela-commerce/vela-commerce/internal/order"
	"github.com/vela-commerce/vela-commerce/internal/stock"
	"github.com/vela-commerce/vela-commerce/internal/suppliers"
	"github.com/vela-commerce/vela-commerce/internal/wallet"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	CatalogHandler   *catalog.Handler
	CartHandler      *order.Handler
	StockHandler     *stock.Handler
	SuppliersHandler *suppliers.Handler
	WalletHandler    *wallet.Handler
}

// NewRouter constructs the chi.Router with Vela defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(params.Config) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/catalog", params.CatalogHandler.MountRoutes)
	r.Route("/carts", params.CartHandler.MountRoutes)
	r.Route("/stock", params.StockHandler.MountRoutes)
	r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
	r.Route("/wallet", params.WalletHandler.MountRoutes)

	return r
}
