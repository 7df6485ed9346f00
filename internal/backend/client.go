package backend

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

	"bluewear/internal/domain/order"
	"bluewear/internal/domain/product"
	"bluewear/internal/domain/user"
)

// APIError is a non-2xx response from the storefront backend. Detail is
// the server-provided message when the body carried one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (user.User, error) {
	var u user.User
	err := c.do(ctx, http.MethodPost, "/auth/login", loginReq{Email: email, Password: password}, &u)
	return u, err
}

func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var items []product.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, &items)
	return items, err
}

func (c *Client) CreateProduct(ctx context.Context, in product.CreateInput) (product.Product, error) {
	var p product.Product
	err := c.do(ctx, http.MethodPost, "/products", in, &p)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	var items []order.Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, &items)
	return items, err
}

func (c *Client) CreateOrder(ctx context.Context, payload order.Order) (order.Order, error) {
	var o order.Order
	err := c.do(ctx, http.MethodPost, "/orders", payload, &o)
	return o, err
}

type markPaidReq struct {
	OrderID string `json:"order_id"`
}

func (c *Client) MarkOrderPaid(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPost, "/orders/mark-paid", markPaidReq{OrderID: orderID}, nil)
}

func (c *Client) MonthlyReport(ctx context.Context) (order.Report, error) {
	var r order.Report
	err := c.do(ctx, http.MethodGet, "/reports/monthly", nil, &r)
	return r, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
