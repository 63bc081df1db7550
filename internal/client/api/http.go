package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

// HTTPClient implements Client over plain HTTP/JSON.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient constructs a client for the backend at baseURL. The timeout
// applies per request on top of any context deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// errorBody is the structured error shape some backends attach to non-2xx
// responses.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one request and decodes a 2xx JSON body into out (when non-nil).
// Channel failures map to common.ErrTransport, 404 to common.ErrNotFound.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, header http.Header, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", common.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", common.ErrNotFound, readErrorMessage(resp.Body))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: %s: %s",
			common.ErrTransport, method, path, resp.Status, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s %s response: %v", common.ErrTransport, method, path, err)
	}
	return nil
}

// readErrorMessage extracts a human-readable message from an error response
// body: the structured {"message": ...} field when present, otherwise the
// raw text, otherwise a generic placeholder.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return "no further details"
	}
	var eb errorBody
	if json.Unmarshal(data, &eb) == nil && eb.Message != "" {
		return eb.Message
	}
	return string(bytes.TrimSpace(data))
}

func (c *HTTPClient) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	q := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, nil, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	in := models.User{Email: email, Password: password}
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	h := http.Header{"Authorization": {"Bearer " + token}}
	return c.do(ctx, http.MethodPost, "/logout", nil, h, nil, nil)
}

func (c *HTTPClient) ListCategories(ctx context.Context, ownerID string) ([]models.Category, error) {
	var out []models.Category
	q := url.Values{"userId": {ownerID}}
	if err := c.do(ctx, http.MethodGet, "/categories", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, nil, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(cat.ID), nil, nil, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil, nil, nil)
}

func (c *HTTPClient) ListTransactions(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	var out []models.Transaction
	q := url.Values{"userId": {ownerID}}
	if err := c.do(ctx, http.MethodGet, "/transactions", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateTransaction(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(t.ID), nil, nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil, nil, nil, nil)
}

var _ Client = (*HTTPClient)(nil)
