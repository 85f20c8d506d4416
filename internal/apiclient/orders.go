package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"jewelhub/internal/models"
)

// Orders, bayinin siparişlerini döndürür. status boşsa filtre uygulanmaz.
func (c *Client) Orders(ctx context.Context, status string, page int) ([]models.Order, error) {
	p := pageQuery{page: page}.params()
	p["status_filter"] = status
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders"+query(p), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Order(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder, vitrin siparişini oluşturur. Gövdede fiyat bulunmaz.
func (c *Client) CreateOrder(ctx context.Context, slug string, in models.OrderCreate) (*models.OrderResult, error) {
	var out models.OrderResult
	if err := c.do(ctx, http.MethodPost, "/orders/storefront/"+url.PathEscape(slug), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
