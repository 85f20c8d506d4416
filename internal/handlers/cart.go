package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/cart"
	"jewelhub/internal/storefront"
)

// cartRequest, JSON sepet uç noktalarının gövdesidir.
type cartRequest struct {
	ProductSlug string `json:"product_slug" form:"product_slug"`
	ProductID   int64  `json:"product_id" form:"product_id"`
	Quantity    int    `json:"quantity" form:"quantity"`
}

var errOutOfStock = errors.New("product out of stock")

// Sepet hatalarının sorgu kodları ve gösterilen metinleri.
const (
	cartErrOutOfStock  = "out_of_stock"
	cartErrUnavailable = "unavailable"
	cartErrUpdate      = "update_failed"
)

var cartErrorText = map[string]string{
	cartErrOutOfStock:  "This piece is currently out of stock",
	cartErrUnavailable: "Sorry, this piece could not be added to your cart",
	cartErrUpdate:      "Your cart could not be updated. Please try again.",
}

// cartReturn, form gönderiminden sonra sepet açık olarak vitrine döner.
// Renk geçersiz kılmaları gizli alanlardan korunur.
func cartReturn(c *gin.Context) string {
	return cartURLs(c).CartOpen()
}

func cartURLs(c *gin.Context) storefront.URLs {
	return storefront.NewURLs(c.Param("slug"), validHexOrEmpty(c.PostForm("primary")), validHexOrEmpty(c.PostForm("accent")))
}

// addProduct, ürünü backend'den alır ve sepete ekler. Fiyat ve ad
// istemciden değil vitrin verisinden gelir.
func (h *Handler) addProduct(c *gin.Context, productSlug string) (*cart.Cart, int, error) {
	slug := c.Param("slug")
	product, err := h.api.StorefrontProduct(c.Request.Context(), slug, productSlug)
	if err != nil {
		return nil, http.StatusNotFound, err
	}
	if !product.InStock {
		return nil, http.StatusConflict, errOutOfStock
	}
	ct, err := h.cartService.AddToCart(c.Request.Context(), h.cartScope(c, slug), product.CartItem())
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return ct, http.StatusOK, nil
}

// AddToCart, form gönderimiyle sepete ürün ekler.
func (h *Handler) AddToCart(c *gin.Context) {
	if _, _, err := h.addProduct(c, c.PostForm("product_slug")); err != nil {
		log.Printf("AddToCart - %s: %v", c.PostForm("product_slug"), err)
		code := cartErrUnavailable
		if errors.Is(err, errOutOfStock) {
			code = cartErrOutOfStock
		}
		c.Redirect(http.StatusSeeOther, cartURLs(c).CartError(code))
		return
	}
	c.Redirect(http.StatusSeeOther, cartReturn(c))
}

// UpdateCartItem, sepet satırının miktarını günceller; 0 satırı siler.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.PostForm("product_id"), 10, 64)
	quantity, qerr := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || qerr != nil {
		c.Redirect(http.StatusSeeOther, cartURLs(c).CartError(cartErrUpdate))
		return
	}
	if _, err := h.cartService.UpdateQuantity(c.Request.Context(), h.cartScope(c, c.Param("slug")), productID, quantity); err != nil {
		log.Printf("UpdateCartItem - %v", err)
		c.Redirect(http.StatusSeeOther, cartURLs(c).CartError(cartErrUpdate))
		return
	}
	c.Redirect(http.StatusSeeOther, cartReturn(c))
}

// RemoveFromCart, satırı sepetten çıkarır.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.PostForm("product_id"), 10, 64)
	if err == nil {
		_, err = h.cartService.RemoveFromCart(c.Request.Context(), h.cartScope(c, c.Param("slug")), productID)
	}
	if err != nil {
		log.Printf("RemoveFromCart - %v", err)
		c.Redirect(http.StatusSeeOther, cartURLs(c).CartError(cartErrUpdate))
		return
	}
	c.Redirect(http.StatusSeeOther, cartReturn(c))
}

func cartJSON(ct *cart.Cart) gin.H {
	return gin.H{
		"success":   true,
		"items":     ct.Items,
		"itemCount": ct.ItemCount(),
		"total":     ct.Total(),
	}
}

// APIGetCart, sepetin JSON halidir.
func (h *Handler) APIGetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartJSON(h.loadCart(c, c.Param("slug"))))
}

// APIAddToCart, JSON ile sepete ürün ekler.
func (h *Handler) APIAddToCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBind(&req); err != nil || req.ProductSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	ct, status, err := h.addProduct(c, req.ProductSlug)
	if err != nil {
		log.Printf("APIAddToCart - %s: %v", req.ProductSlug, err)
		c.JSON(status, gin.H{"success": false, "error": errorMessage(err, "Failed to add to cart")})
		return
	}
	c.JSON(http.StatusOK, cartJSON(ct))
}

func (h *Handler) APIUpdateCartItem(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBind(&req); err != nil || req.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	ct, err := h.cartService.UpdateQuantity(c.Request.Context(), h.cartScope(c, c.Param("slug")), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("APIUpdateCartItem - %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cartJSON(ct))
}

func (h *Handler) APIRemoveFromCart(c *gin.Context) {
	var req cartRequest
	if err := c.ShouldBind(&req); err != nil || req.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}
	ct, err := h.cartService.RemoveFromCart(c.Request.Context(), h.cartScope(c, c.Param("slug")), req.ProductID)
	if err != nil {
		log.Printf("APIRemoveFromCart - %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cartJSON(ct))
}

// GetCartCount, sepetteki toplam adedi döndürür.
func (h *Handler) GetCartCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.loadCart(c, c.Param("slug")).ItemCount()})
}
