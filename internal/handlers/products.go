package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"jewelhub/internal/models"
	"jewelhub/internal/services"
)

const (
	tabMyProducts = "my-products"
	tabCatalog    = "catalog"
)

type productsView struct {
	tab      string
	category string
	search   string
	kind     string
	message  string
	// Hatalı fiyat girişinde kullanıcının yazdığı değer korunur.
	prices map[int64]string
}

func productsViewFrom(c *gin.Context) productsView {
	tab := c.DefaultQuery("tab", tabMyProducts)
	if v := c.PostForm("tab"); v != "" {
		tab = v
	}
	if tab != tabCatalog {
		tab = tabMyProducts
	}
	v := productsView{
		tab:      tab,
		category: c.Query("category"),
		search:   strings.TrimSpace(c.Query("search")),
		prices:   map[int64]string{},
	}
	if c.Request.Method == http.MethodPost {
		v.category = c.PostForm("category")
		v.search = strings.TrimSpace(c.PostForm("search"))
	}
	return v
}

// ProductsPage, bayinin ürünlerini veya üretici kataloğunu listeler.
func (h *Handler) ProductsPage(c *gin.Context) {
	h.renderProducts(c, http.StatusOK, productsViewFrom(c))
}

func (h *Handler) renderProducts(c *gin.Context, status int, v productsView) {
	ctx := c.Request.Context()
	data := gin.H{
		"title":    "Products - JewelHub",
		"active":   "products",
		"tab":      v.tab,
		"category": v.category,
		"search":   v.search,
		"kind":     v.kind,
		"message":  v.message,
		"prices":   v.prices,
	}

	if v.tab == tabCatalog {
		products, err := h.api.Catalog(ctx, models.CatalogQuery{Category: v.category, Search: v.search})
		if err != nil {
			log.Printf("renderProducts - Failed to load products: %v", err)
		}
		categories, err := h.api.CatalogCategories(ctx)
		if err != nil {
			log.Printf("renderProducts - categories error: %v", err)
		}
		materials, err := h.api.CatalogMaterials(ctx)
		if err != nil {
			log.Printf("renderProducts - materials error: %v", err)
		}
		data["catalog"] = products
		data["categories"] = categories
		data["materials"] = materials
	} else {
		page, err := h.api.MyProducts(ctx, models.CatalogQuery{Search: v.search})
		if err != nil {
			log.Printf("renderProducts - Failed to load products: %v", err)
			page = &models.MyProductPage{}
		}
		data["myProducts"] = page.Items
		data["total"] = page.Total
	}
	c.HTML(status, "dashboard_products.html", h.page(c, data))
}

// HandleAddProduct, katalog ürününü en az %20 kârla bayinin mağazasına ekler.
func (h *Handler) HandleAddProduct(c *gin.Context) {
	v := productsViewFrom(c)
	v.tab = tabCatalog
	ctx := c.Request.Context()

	productID, err := strconv.ParseInt(c.PostForm("product_id"), 10, 64)
	if err != nil {
		v.kind, v.message = "error", "Product not found"
		h.renderProducts(c, http.StatusBadRequest, v)
		return
	}
	raw := c.PostForm("retail_price")
	v.prices[productID] = raw

	product, err := h.api.CatalogProduct(ctx, productID)
	if err != nil {
		log.Printf("HandleAddProduct - product %d: %v", productID, err)
		v.kind, v.message = "error", errorMessage(err, "Failed to add product")
		h.renderProducts(c, http.StatusBadRequest, v)
		return
	}
	price, err := services.ValidateRetailPrice(raw, product.BasePrice)
	if err != nil {
		v.kind, v.message = "error", userMessage(err, "Failed to add product")
		h.renderProducts(c, http.StatusBadRequest, v)
		return
	}
	if err := h.api.AddProduct(ctx, models.AddProductRequest{ProductID: productID, RetailPrice: models.NewAmount(price)}); err != nil {
		log.Printf("HandleAddProduct - add %d: %v", productID, err)
		v.kind, v.message = "error", errorMessage(err, "Failed to add product")
		h.renderProducts(c, http.StatusBadRequest, v)
		return
	}
	log.Printf("HandleAddProduct - product %d added at %s", productID, price)
	delete(v.prices, productID)
	v.kind, v.message = "success", "Product added to your store!"
	h.renderProducts(c, http.StatusOK, v)
}

// HandleUpdateProduct, bayi ürününün fiyatını ve bayraklarını günceller.
func (h *Handler) HandleUpdateProduct(c *gin.Context) {
	v := productsViewFrom(c)
	v.tab = tabMyProducts

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		v.kind, v.message = "error", "Product not found"
		h.renderProducts(c, http.StatusBadRequest, v)
		return
	}

	var in models.MyProductUpdate
	if raw := strings.TrimSpace(c.PostForm("retail_price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil || !price.IsPositive() {
			v.kind, v.message = "error", userMessage(services.ErrInvalidPrice, "Failed to update product")
			h.renderProducts(c, http.StatusBadRequest, v)
			return
		}
		amount := models.NewAmount(price)
		in.RetailPrice = &amount
	}
	if _, ok := c.GetPostForm("has_flags"); ok {
		active := c.PostForm("is_active") == "on"
		featured := c.PostForm("is_featured") == "on"
		in.IsActive = &active
		in.IsFeatured = &featured
	}

	if err := h.api.UpdateMyProduct(c.Request.Context(), id, in); err != nil {
		log.Printf("HandleUpdateProduct - update %d: %v", id, err)
		v.kind, v.message = "error", errorMessage(err, "Failed to update product")
		h.renderProducts(c, http.StatusBadRequest, v)
		return
	}
	v.kind, v.message = "success", "Product updated"
	h.renderProducts(c, http.StatusOK, v)
}

// HandleRemoveProduct, ürünü bayinin mağazasından kaldırır.
func (h *Handler) HandleRemoveProduct(c *gin.Context) {
	v := productsViewFrom(c)
	v.tab = tabMyProducts

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		err = h.api.RemoveMyProduct(c.Request.Context(), id)
	}
	if err != nil {
		log.Printf("HandleRemoveProduct - remove %s: %v", c.Param("id"), err)
		v.kind, v.message = "error", errorMessage(err, "Failed to remove product")
		h.renderProducts(c, http.StatusBadRequest, v)
		return
	}
	v.kind, v.message = "success", "Product removed from your store"
	h.renderProducts(c, http.StatusOK, v)
}
