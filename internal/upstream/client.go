// Package upstream implements the typed client for the remote commerce
// backend. All durable state (products, suppliers, orders, deposits)
// lives behind this API; the client performs exactly one request per
// call and never retries on its own.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// APIError carries a backend-provided failure message for any non-2xx
// response. Message falls back to the HTTP status text when the body
// has no message field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client wraps interactions with the commerce backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new client. baseURL is the backend host root,
// without the /api/v1 prefix.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchProducts loads the full product feed.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct applies a partial update to one product.
func (c *Client) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, error) {
	var updated Product
	path := "/api/v1/products/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, patch, &updated); err != nil {
		return Product{}, err
	}
	return updated, nil
}

// FetchSuppliers loads all suppliers.
func (c *Client) FetchSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := c.do(ctx, http.MethodGet, "/api/v1/suppliers", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier registers a new supplier.
func (c *Client) CreateSupplier(ctx context.Context, supplier Supplier) (Supplier, error) {
	var created Supplier
	if err := c.do(ctx, http.MethodPost, "/api/v1/suppliers/add", supplier, &created); err != nil {
		return Supplier{}, err
	}
	return created, nil
}

// CreateOrder submits a finalized order. The backend validates stock
// and may deduct a wallet balance; its message is passed through as-is.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (OrderConfirmation, error) {
	var conf OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/api/v1/orders/create", order, &conf); err != nil {
		return OrderConfirmation{}, err
	}
	return conf, nil
}

// CreateDeposit submits a wallet top-up for the given account email.
func (c *Client) CreateDeposit(ctx context.Context, email string, deposit DepositRequest) (DepositConfirmation, error) {
	var conf DepositConfirmation
	path := "/deposit/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodPost, path, deposit, &conf); err != nil {
		return DepositConfirmation{}, err
	}
	return conf, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("upstream: decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
