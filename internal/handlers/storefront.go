package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jewelhub/internal/apiclient"
	"jewelhub/internal/cart"
	"jewelhub/internal/models"
	"jewelhub/internal/services"
	"jewelhub/internal/storefront"
)

// cartScope, ziyaretçinin bu mağazadaki sepet anahtarını belirler.
func (h *Handler) cartScope(c *gin.Context, slug string) services.CartScope {
	return services.CartScope{VisitorID: h.visitor(c), StoreSlug: slug}
}

func (h *Handler) loadCart(c *gin.Context, slug string) *cart.Cart {
	ct, err := h.cartService.GetCart(c.Request.Context(), h.cartScope(c, slug))
	if err != nil {
		log.Printf("loadCart - %s: %v", slug, err)
		return &cart.Cart{}
	}
	return ct
}

// storeContext, bir vitrin sayfası için mağazayı ve sepeti yükler.
// Mağaza bulunamazsa hata sayfası çizilir ve nil döner.
func (h *Handler) storeContext(c *gin.Context) (*models.StoreData, *cart.Cart) {
	slug := c.Param("slug")
	store, err := h.api.Storefront(c.Request.Context(), slug)
	if err != nil {
		log.Printf("storeContext - Failed to load store %s: %v", slug, err)
		status := http.StatusBadGateway
		if apiclient.StatusCode(err) == http.StatusNotFound {
			status = http.StatusNotFound
		}
		h.renderError(c, status, errorMessage(err, "Store not found"))
		return nil, nil
	}
	return store, h.loadCart(c, slug)
}

// storeProps, mağaza sayfalarının ortak şablon verisidir.
func storeProps(c *gin.Context, in storefront.Input) storefront.Props {
	if in.PrimaryOverride == "" {
		in.PrimaryOverride = c.Query("primary")
	}
	if in.AccentOverride == "" {
		in.AccentOverride = c.Query("accent")
	}
	in.CartOpen = c.Query("cart") == "open"
	in.CartError = cartErrorText[c.Query("cart_error")]
	return storefront.Build(in)
}

func storeTitle(page string, store *models.StoreData) string {
	if page == "" {
		return store.Store.Name
	}
	return page + " - " + store.Store.Name
}

// StorePage, mağazanın temasına göre vitrin sayfasını çizer.
func (h *Handler) StorePage(c *gin.Context) {
	store, ct := h.storeContext(c)
	if store == nil {
		return
	}
	slug := store.Store.Slug
	if slug == "" {
		slug = c.Param("slug")
	}
	ctx := c.Request.Context()
	category := c.Query("category")
	search := strings.TrimSpace(c.Query("search"))

	categories, err := h.api.StorefrontCategories(ctx, slug)
	if err != nil {
		log.Printf("StorePage - %v", err)
		categories = nil
	}

	var products []models.StoreProduct
	page, err := h.api.StorefrontProducts(ctx, slug, models.CatalogQuery{Category: category, Search: search})
	if err != nil {
		log.Printf("StorePage - Failed to load products: %v", err)
	} else {
		products = page.Products
	}

	props := storeProps(c, storefront.Input{
		Store:      store,
		Products:   products,
		Categories: categories,
		Category:   category,
		Search:     search,
		Cart:       ct,
	})

	var featured []models.StoreProduct
	if props.Config.ShowFeaturedProducts && category == "" && search == "" {
		if featured, err = h.api.StorefrontFeatured(ctx, slug); err != nil {
			log.Printf("StorePage - featured error: %v", err)
		}
	}

	c.HTML(http.StatusOK, props.Template(), gin.H{
		"title":    storeTitle("", store),
		"p":        props,
		"featured": featured,
	})
}

// StoreProductPage, tek ürün detayını gösterir.
func (h *Handler) StoreProductPage(c *gin.Context) {
	store, ct := h.storeContext(c)
	if store == nil {
		return
	}
	product, err := h.api.StorefrontProduct(c.Request.Context(), c.Param("slug"), c.Param("productSlug"))
	if err != nil {
		log.Printf("StoreProductPage - %s/%s: %v", c.Param("slug"), c.Param("productSlug"), err)
		status := http.StatusBadGateway
		if apiclient.StatusCode(err) == http.StatusNotFound {
			status = http.StatusNotFound
		}
		h.renderError(c, status, errorMessage(err, "Product not found"))
		return
	}
	props := storeProps(c, storefront.Input{Store: store, Cart: ct})
	c.HTML(http.StatusOK, "product.html", gin.H{
		"title":   storeTitle(product.Name, store),
		"p":       props,
		"product": product,
	})
}

// StoreAboutPage, mağaza hakkında sayfasıdır.
func (h *Handler) StoreAboutPage(c *gin.Context) {
	store, ct := h.storeContext(c)
	if store == nil {
		return
	}
	props := storeProps(c, storefront.Input{Store: store, Cart: ct})
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title": storeTitle("About", store),
		"p":     props,
	})
}

// StoreContactPage, iletişim formunu gösterir.
func (h *Handler) StoreContactPage(c *gin.Context) {
	store, ct := h.storeContext(c)
	if store == nil {
		return
	}
	props := storeProps(c, storefront.Input{Store: store, Cart: ct})
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": storeTitle("Contact", store),
		"p":     props,
		"sent":  c.Query("sent") == "1",
	})
}

// HandleStoreContact, iletişim mesajını mağaza gelen kutusuna iletir.
func (h *Handler) HandleStoreContact(c *gin.Context) {
	store, ct := h.storeContext(c)
	if store == nil {
		return
	}
	props := storeProps(c, storefront.Input{
		Store:           store,
		Cart:            ct,
		PrimaryOverride: c.PostForm("primary"),
		AccentOverride:  c.PostForm("accent"),
	})

	var msg models.ContactMessage
	if err := c.ShouldBind(&msg); err != nil {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"title": storeTitle("Contact", store),
			"p":     props,
			"error": "Please fill in your name, a valid email and a message.",
			"form":  msg,
		})
		return
	}
	msg.StoreSlug = store.Store.Slug
	msg.StoreName = store.Store.Name
	msg.IP = c.ClientIP()
	msg.CreatedAt = time.Now()

	if err := h.contact.Submit(msg); err != nil {
		log.Printf("HandleStoreContact - %s: %v", msg.StoreSlug, err)
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"title": storeTitle("Contact", store),
			"p":     props,
			"error": userMessage(err, "Failed to send message. Please try again."),
			"form":  msg,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, props.URLs.Contact()+sentSuffix(props.URLs.Contact()))
}

func sentSuffix(u string) string {
	if strings.Contains(u, "?") {
		return "&sent=1"
	}
	return "?sent=1"
}
