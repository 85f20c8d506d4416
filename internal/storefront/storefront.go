// Package storefront, dört vitrin şablonunun ortak girdisini hazırlar.
package storefront

import (
	"net/url"

	"github.com/shopspring/decimal"

	"jewelhub/internal/cart"
	"jewelhub/internal/models"
	"jewelhub/internal/theme"
)

// Input, bir vitrin sayfası çizmek için gereken ham veridir.
type Input struct {
	Store      *models.StoreData
	Products   []models.StoreProduct
	Categories []string
	Category   string
	Search     string
	Cart       *cart.Cart
	CartOpen   bool
	// CartError, sepet panelinde gösterilecek hata metnidir.
	CartError string
	// Renk geçersiz kılmaları; yalnızca #RRGGBB kabul edilir.
	PrimaryOverride string
	AccentOverride  string
}

// Props, her şablonun aldığı ortak veridir.
type Props struct {
	Store        models.StoreInfo
	Config       models.StoreConfig
	ProductCount int
	HeroTitle    string
	HeroSubtitle string

	Theme  theme.Theme
	Styles theme.Styles

	Products         []models.StoreProduct
	Categories       []string
	SelectedCategory string
	Search           string

	CartItems     []models.CartItem
	CartItemCount int
	CartTotal     decimal.Decimal
	CartOpen      bool
	CartError     string

	PrimaryOverride string
	AccentOverride  string
	BrandColor      string
	AccentColor     string

	URLs URLs
}

// Build, temayı bir kez çözer ve şablon verisini hazırlar.
func Build(in Input) Props {
	data := models.StoreData{}
	if in.Store != nil {
		data = *in.Store
	}
	cfg := data.ResolvedConfig()
	t := theme.Resolve(cfg.Theme)

	primary := validOrEmpty(in.PrimaryOverride)
	accent := validOrEmpty(in.AccentOverride)

	c := in.Cart
	if c == nil {
		c = &cart.Cart{}
	}

	return Props{
		Store:            data.Store,
		Config:           cfg,
		ProductCount:     data.ProductCount,
		HeroTitle:        data.HeroTitle(),
		HeroSubtitle:     data.HeroSubtitle(),
		Theme:            t,
		Styles:           t.Styles(),
		Products:         in.Products,
		Categories:       in.Categories,
		SelectedCategory: in.Category,
		Search:           in.Search,
		CartItems:        c.Items,
		CartItemCount:    c.ItemCount(),
		CartTotal:        c.Total(),
		CartOpen:         in.CartOpen || in.CartError != "",
		CartError:        in.CartError,
		PrimaryOverride:  primary,
		AccentOverride:   accent,
		BrandColor:       firstNonEmpty(accent, primary, data.Store.AccentColor, data.Store.PrimaryColor, t.DefaultBrand()),
		AccentColor:      firstNonEmpty(accent, data.Store.AccentColor, t.DefaultAccent()),
		URLs:             NewURLs(data.Store.Slug, primary, accent),
	}
}

// Template, tema için şablon dosyasının adını döndürür.
func (p Props) Template() string {
	return p.Theme.Template()
}

func (p Props) CartEmpty() bool {
	return len(p.CartItems) == 0
}

func validOrEmpty(color string) string {
	if theme.ValidHex(color) {
		return color
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// URLs, şablonlardaki geri çağırımların yerini alan bağlantılardır.
// Renk geçersiz kılmaları tüm vitrin bağlantılarında korunur.
type URLs struct {
	base string
	keep url.Values
}

func NewURLs(slug, primary, accent string) URLs {
	keep := url.Values{}
	if primary != "" {
		keep.Set("primary", primary)
	}
	if accent != "" {
		keep.Set("accent", accent)
	}
	return URLs{base: "/store/" + url.PathEscape(slug), keep: keep}
}

func (u URLs) with(path string, extra map[string]string) string {
	q := url.Values{}
	for k, v := range u.keep {
		q[k] = append([]string(nil), v...)
	}
	for k, v := range extra {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return u.base + path
	}
	return u.base + path + "?" + q.Encode()
}

func (u URLs) Home() string { return u.with("", nil) }

// Category, kategori filtresi uygulanmış vitrin adresidir; boş kategori filtreyi kaldırır.
func (u URLs) Category(category string) string {
	return u.with("", map[string]string{"category": category})
}

// SearchAction, arama formunun hedefidir. Renkler gizli alanlarla taşınır.
func (u URLs) SearchAction() string { return u.base }

// Hidden, formlara eklenecek korunmuş sorgu parametreleridir.
func (u URLs) Hidden() map[string]string {
	out := map[string]string{}
	for k := range u.keep {
		out[k] = u.keep.Get(k)
	}
	return out
}

func (u URLs) CartOpen() string { return u.with("", map[string]string{"cart": "open"}) }

// CartError, sepeti açar ve hata kodunu taşır.
func (u URLs) CartError(code string) string {
	return u.with("", map[string]string{"cart": "open", "cart_error": code})
}

func (u URLs) CartClose() string  { return u.Home() }
func (u URLs) AddToCart() string  { return u.base + "/cart/add" }
func (u URLs) CartUpdate() string { return u.base + "/cart/update" }
func (u URLs) CartRemove() string { return u.base + "/cart/remove" }
func (u URLs) Checkout() string   { return u.with("/checkout", nil) }
func (u URLs) About() string      { return u.with("/about", nil) }
func (u URLs) Contact() string    { return u.with("/contact", nil) }

func (u URLs) Product(productSlug string) string {
	return u.with("/products/"+url.PathEscape(productSlug), nil)
}
