package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/models"
	"jewelhub/internal/services"
	"jewelhub/internal/storefront"
	"jewelhub/internal/theme"
)

func validHexOrEmpty(color string) string {
	if theme.ValidHex(color) {
		return color
	}
	return ""
}

// checkoutURLs, ödeme formundan gelen renk geçersiz kılmalarını korur.
func checkoutURLs(c *gin.Context) storefront.URLs {
	primary, accent := c.Query("primary"), c.Query("accent")
	if c.Request.Method == http.MethodPost {
		primary, accent = c.PostForm("primary"), c.PostForm("accent")
	}
	return storefront.NewURLs(c.Param("slug"), validHexOrEmpty(primary), validHexOrEmpty(accent))
}

// CheckoutPage, ödeme formunu gösterir. Sepet boşsa backend'e gitmeden
// vitrine döner.
func (h *Handler) CheckoutPage(c *gin.Context) {
	slug := c.Param("slug")
	ct := h.loadCart(c, slug)
	if ct.Empty() {
		c.Redirect(http.StatusSeeOther, checkoutURLs(c).Home())
		return
	}
	store, _ := h.storeContext(c)
	if store == nil {
		return
	}
	props := storeProps(c, storefront.Input{Store: store, Cart: ct})
	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"title":   storeTitle("Checkout", store),
		"p":       props,
		"summary": services.Summarize(ct),
		"form":    models.CheckoutForm{ShippingCountry: "India"},
	})
}

// HandleCheckout, siparişi oluşturur; başarıda sepeti boşaltır ve onay
// sayfasına yönlendirir.
func (h *Handler) HandleCheckout(c *gin.Context) {
	slug := c.Param("slug")
	urls := checkoutURLs(c)
	ct := h.loadCart(c, slug)
	if ct.Empty() {
		c.Redirect(http.StatusSeeOther, urls.Home())
		return
	}

	var form models.CheckoutForm
	bindErr := c.ShouldBind(&form)

	store, _ := h.storeContext(c)
	if store == nil {
		return
	}
	props := storeProps(c, storefront.Input{
		Store:           store,
		Cart:            ct,
		PrimaryOverride: c.PostForm("primary"),
		AccentOverride:  c.PostForm("accent"),
	})
	render := func(status int, msg string) {
		c.HTML(status, "checkout.html", gin.H{
			"title":   storeTitle("Checkout", store),
			"p":       props,
			"summary": services.Summarize(ct),
			"form":    form,
			"error":   msg,
		})
	}

	if bindErr != nil {
		render(http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	order := services.BuildOrder(form, ct)
	result, err := h.api.CreateOrder(c.Request.Context(), slug, order)
	if err != nil {
		log.Printf("HandleCheckout - %s: %v", slug, err)
		render(http.StatusBadRequest, errorMessage(err, "Failed to place order"))
		return
	}
	log.Printf("HandleCheckout - order %s created for %s", result.OrderNumber, slug)

	if err := h.cartService.ClearCart(c.Request.Context(), h.cartScope(c, slug)); err != nil {
		log.Printf("HandleCheckout - clear cart error: %v", err)
	}
	h.email.SendOrderConfirmationAsync(store.Store.Name, order, *result)

	q := url.Values{}
	q.Set("order", result.OrderNumber)
	q.Set("email", order.CustomerEmail)
	for k, v := range urls.Hidden() {
		q.Set(k, v)
	}
	c.Redirect(http.StatusSeeOther, "/store/"+url.PathEscape(slug)+"/order-success?"+q.Encode())
}

// OrderSuccessPage, sipariş onay sayfasıdır.
func (h *Handler) OrderSuccessPage(c *gin.Context) {
	store, ct := h.storeContext(c)
	if store == nil {
		return
	}
	props := storeProps(c, storefront.Input{Store: store, Cart: ct})
	c.HTML(http.StatusOK, "order_success.html", gin.H{
		"title":       storeTitle("Order Confirmed", store),
		"p":           props,
		"orderNumber": c.Query("order"),
		"email":       c.Query("email"),
	})
}
