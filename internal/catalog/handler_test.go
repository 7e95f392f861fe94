package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/vela-commerce/vela-commerce/internal/upstream"
)

func newTestRouter(feed *fakeFeed) http.Handler {
	ix := NewIndex()
	svc := NewService(feed, ix, discardLogger())
	handler := NewHandler(discardLogger(), svc)
	r := chi.NewRouter()
	r.Route("/catalog", handler.MountRoutes)
	return r
}

type listResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandlerListFilters(t *testing.T) {
	feed := &fakeFeed{products: []upstream.Product{
		{ID: "p1", Name: "Steel Bolt", SKU: "SB-100", Stock: 120},
		{ID: "p2", Name: "Copper Wire", SKU: "CW-200", Stock: 4},
		{ID: "p3", Name: "Rubber Seal", SKU: "RS-300", Stock: 0},
	}}
	router := newTestRouter(feed)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, router, "/catalog")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)

	rec = get(t, router, "/catalog?q=copper")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "p2", resp.Products[0].ID)

	rec = get(t, router, "/catalog?available=1")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
}

func TestHandlerLowStock(t *testing.T) {
	feed := &fakeFeed{products: []upstream.Product{
		{ID: "p1", Name: "Steel Bolt", Stock: 120},
		{ID: "p2", Name: "Copper Wire", Stock: 4},
	}}
	router := newTestRouter(feed)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, router, "/catalog/low-stock")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Products  []Product `json:"products"`
		Total     int       `json:"total"`
		Threshold int       `json:"threshold"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Equal(t, LowStockThreshold, resp.Threshold)
}

func TestHandlerRefreshFailureIs502(t *testing.T) {
	feed := &fakeFeed{err: errors.New("connection refused")}
	router := newTestRouter(feed)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)
}
