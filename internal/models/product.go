package models

import "github.com/shopspring/decimal"

// Product, üretici kataloğundaki ürünü temsil eder.
type Product struct {
	ID               int64               `json:"id"`
	ManufacturerID   int64               `json:"manufacturer_id"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"short_description"`
	BasePrice        decimal.Decimal     `json:"base_price"`
	MSRP             decimal.NullDecimal `json:"msrp"`
	SKU              string              `json:"sku"`
	Category         string              `json:"category"`
	Subcategory      string              `json:"subcategory"`
	Material         string              `json:"material"`
	PrimaryImage     string              `json:"primary_image"`
	Images           []string            `json:"images"`
	StockQuantity    int                 `json:"stock_quantity"`
	IsActive         bool                `json:"is_active"`
	IsFeatured       bool                `json:"is_featured"`
	Tags             []string            `json:"tags"`
	CreatedAt        Timestamp           `json:"created_at"`
}

// MinRetailPrice, bayinin girebileceği en düşük satış fiyatıdır (%20 kâr).
func (p Product) MinRetailPrice() decimal.Decimal {
	return p.BasePrice.Mul(decimal.NewFromFloat(1.2))
}

// MyProduct, bayinin mağazasına eklediği üründür.
type MyProduct struct {
	ID                int64               `json:"id"`
	ResellerID        int64               `json:"reseller_id"`
	ProductID         int64               `json:"product_id"`
	RetailPrice       decimal.Decimal     `json:"retail_price"`
	CompareAtPrice    decimal.NullDecimal `json:"compare_at_price"`
	IsActive          bool                `json:"is_active"`
	IsFeatured        bool                `json:"is_featured"`
	DisplayOrder      int                 `json:"display_order"`
	CustomTitle       string              `json:"custom_title"`
	CustomDescription string              `json:"custom_description"`
	Margin            decimal.Decimal     `json:"margin"`
	MarginPercent     float64             `json:"margin_percent"`
	Product           Product             `json:"product"`
	CreatedAt         Timestamp           `json:"created_at"`
}

// DisplayName, varsa özel başlığı döndürür.
func (p MyProduct) DisplayName() string {
	if p.CustomTitle != "" {
		return p.CustomTitle
	}
	return p.Product.Name
}

type MyProductPage struct {
	Items   []MyProduct `json:"items"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	PerPage int         `json:"per_page"`
}

type AddProductRequest struct {
	ProductID         int64   `json:"product_id"`
	RetailPrice       Amount  `json:"retail_price"`
	CompareAtPrice    *Amount `json:"compare_at_price,omitempty"`
	IsFeatured        bool    `json:"is_featured,omitempty"`
	CustomTitle       string  `json:"custom_title,omitempty"`
	CustomDescription string  `json:"custom_description,omitempty"`
}

type MyProductUpdate struct {
	RetailPrice    *Amount `json:"retail_price,omitempty"`
	CompareAtPrice *Amount `json:"compare_at_price,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	IsFeatured     *bool   `json:"is_featured,omitempty"`
	DisplayOrder   *int    `json:"display_order,omitempty"`
	CustomTitle    *string `json:"custom_title,omitempty"`
}

// CatalogQuery, katalog ve ürün listeleri için filtrelerdir.
type CatalogQuery struct {
	Category string `form:"category"`
	Material string `form:"material"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
