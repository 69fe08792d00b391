package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stockpilot/dashboard/internal/models"
)

// StockClient talks to the remote stock service.
type StockClient struct {
	http *resty.Client
}

// NewStockClient creates a client for the stock service at baseURL.
func NewStockClient(baseURL string, timeout time.Duration) *StockClient {
	return &StockClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

type productsEnvelope struct {
	Products []models.Product `json:"products"`
}

type productEnvelope struct {
	Product models.Product `json:"product"`
}

type alertsEnvelope struct {
	Alerts []models.Alert `json:"alerts"`
}

// GetProducts fetches the full product list.
func (c *StockClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	var out productsEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/products")
	if err != nil {
		return nil, unavailable("stock", "get products", err)
	}
	if resp.IsError() {
		return nil, httpUnavailable("stock", "get products", resp)
	}
	return out.Products, nil
}

// CreateProduct creates a product remotely and returns the created record.
func (c *StockClient) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var out productEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(p).SetResult(&out).Post("/products")
	if err != nil {
		return models.Product{}, unavailable("stock", "create product", err)
	}
	if resp.IsError() {
		return models.Product{}, httpUnavailable("stock", "create product", resp)
	}
	return out.Product, nil
}

// UpdateProduct applies a partial update to the product with the given id.
func (c *StockClient) UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error) {
	var out productEnvelope
	resp, err := c.http.R().SetContext(ctx).SetBody(p).SetResult(&out).Put("/products/" + id)
	if err != nil {
		return models.Product{}, unavailable("stock", "update product", err)
	}
	if resp.IsError() {
		return models.Product{}, httpUnavailable("stock", "update product", resp)
	}
	return out.Product, nil
}

// DeleteProduct deletes the product with the given id.
func (c *StockClient) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/products/" + id)
	if err != nil {
		return unavailable("stock", "delete product", err)
	}
	if resp.IsError() {
		return httpUnavailable("stock", "delete product", resp)
	}
	return nil
}

// GetAlerts fetches the server-computed stock alerts.
func (c *StockClient) GetAlerts(ctx context.Context) ([]models.Alert, error) {
	var out alertsEnvelope
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/alerts")
	if err != nil {
		return nil, unavailable("stock", "get alerts", err)
	}
	if resp.IsError() {
		return nil, httpUnavailable("stock", "get alerts", resp)
	}
	return out.Alerts, nil
}
