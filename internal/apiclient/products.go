package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"jewelhub/internal/models"
)

func (q pageQuery) params() map[string]string {
	p := map[string]string{}
	if q.page > 0 {
		p["page"] = strconv.Itoa(q.page)
	}
	if q.perPage > 0 {
		p["per_page"] = strconv.Itoa(q.perPage)
	}
	return p
}

type pageQuery struct {
	page, perPage int
}

func catalogParams(q models.CatalogQuery) map[string]string {
	p := pageQuery{q.Page, q.PerPage}.params()
	p["category"] = q.Category
	p["material"] = q.Material
	p["search"] = q.Search
	return p
}

// Catalog, üretici kataloğunu filtrelerle listeler.
func (c *Client) Catalog(ctx context.Context, q models.CatalogQuery) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products/catalog"+query(catalogParams(q)), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CatalogProduct(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/catalog/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CatalogCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/products/catalog/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CatalogMaterials(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/products/catalog/materials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyProducts, bayinin mağazasındaki ürünleri sayfalı olarak döndürür.
func (c *Client) MyProducts(ctx context.Context, q models.CatalogQuery) (*models.MyProductPage, error) {
	p := pageQuery{q.Page, q.PerPage}.params()
	p["search"] = q.Search
	var out models.MyProductPage
	if err := c.do(ctx, http.MethodGet, "/products/my-products"+query(p), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddProduct(ctx context.Context, in models.AddProductRequest) error {
	return c.do(ctx, http.MethodPost, "/products/my-products", in, nil)
}

func (c *Client) UpdateMyProduct(ctx context.Context, resellerProductID int64, in models.MyProductUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/my-products/%d", resellerProductID), in, nil)
}

func (c *Client) RemoveMyProduct(ctx context.Context, resellerProductID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/my-products/%d", resellerProductID), nil, nil)
}
