package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"jewelhub/internal/models"
)

// ErrCategories, vitrin kategorileri alınamadığında döner.
var ErrCategories = errors.New("failed to load categories")

func (c *Client) Storefront(ctx context.Context, slug string) (*models.StoreData, error) {
	var out models.StoreData
	if err := c.do(ctx, http.MethodGet, "/store/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StorefrontProducts(ctx context.Context, slug string, q models.CatalogQuery) (*models.StoreProductPage, error) {
	var out models.StoreProductPage
	endpoint := "/store/" + url.PathEscape(slug) + "/products" + query(catalogParams(q))
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StorefrontProduct(ctx context.Context, slug, productSlug string) (*models.StoreProduct, error) {
	var out models.StoreProduct
	endpoint := "/store/" + url.PathEscape(slug) + "/products/" + url.PathEscape(productSlug)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StorefrontFeatured(ctx context.Context, slug string) ([]models.StoreProduct, error) {
	var out []models.StoreProduct
	if err := c.do(ctx, http.MethodGet, "/store/"+url.PathEscape(slug)+"/featured", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StorefrontCategories, ortak istek yolunu kullanmaz: token eklenmez ve
// backend mesajı yerine genel bir hata döner.
func (c *Client) StorefrontCategories(ctx context.Context, slug string) ([]string, error) {
	var out []string
	status, err := c.rawGet(ctx, "/store/"+url.PathEscape(slug)+"/categories", false, &out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCategories, err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrCategories, status)
	}
	return out, nil
}
