// Package client is a typed client for the vinyl catalog API. It mirrors
// the server contract exactly and keeps an immutable snapshot of the full
// catalog, refreshed after every successful load and after every successful
// mutating call, so genre filtering never needs a server round trip.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"vinylstore/internal/models"
)

// FieldError is one per-field validation failure reported by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the catalog API.
type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.RWMutex
	snapshot []models.Product
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type listResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []models.Product `json:"data"`
}

type productResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    models.Product `json:"data"`
}

type errorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// ListProducts fetches the full catalog, newest first, and replaces the
// local snapshot with the result.
func (c *Client) ListProducts() ([]models.Product, error) {
	resp, err := c.do(http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}

	c.setSnapshot(body.Data)
	return c.Snapshot(), nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(id uint) (*models.Product, error) {
	resp, err := c.do(http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}
	return &body.Data, nil
}

// CreateProduct creates a product and returns it as persisted, with the
// store-assigned id, image URL and creation time.
func (c *Client) CreateProduct(input models.ProductInput) (*models.Product, error) {
	return c.mutate(http.MethodPost, "/api/products", input, http.StatusCreated)
}

// UpdateProduct replaces the mutable fields of an existing product.
func (c *Client) UpdateProduct(id uint, input models.ProductInput) (*models.Product, error) {
	return c.mutate(http.MethodPut, fmt.Sprintf("/api/products/%d", id), input, http.StatusOK)
}

// DeleteProduct removes a product and returns its pre-deletion state.
func (c *Client) DeleteProduct(id uint) (*models.Product, error) {
	resp, err := c.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode delete response: %w", err)
	}

	c.refreshSnapshot()
	return &body.Data, nil
}

// Snapshot returns a copy of the most recently loaded catalog.
func (c *Client) Snapshot() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]models.Product, len(c.snapshot))
	copy(snapshot, c.snapshot)
	return snapshot
}

// FilterByGenre returns the snapshot entries matching the given genre,
// without contacting the server.
func (c *Client) FilterByGenre(genre string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var filtered []models.Product
	for _, p := range c.snapshot {
		if p.Genre != nil && *p.Genre == genre {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (c *Client) mutate(method, path string, input models.ProductInput, wantStatus int) (*models.Product, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product payload: %w", err)
	}

	resp, err := c.do(method, path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return nil, decodeAPIError(resp)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}

	c.refreshSnapshot()
	return &body.Data, nil
}

func (c *Client) do(method, path string, body *bytes.Reader) (*http.Response, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequest(method, c.baseURL+path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	return resp, nil
}

// refreshSnapshot reloads the catalog after a successful mutation. The
// mutation already succeeded; a failed reload only leaves the snapshot
// stale until the next load.
func (c *Client) refreshSnapshot() {
	resp, err := c.do(http.MethodGet, "/api/products", nil)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return
	}
	c.setSnapshot(body.Data)
}

func (c *Client) setSnapshot(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = products
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
	}
	return apiErr
}
