package models

import (
	"log"

	"github.com/creasty/defaults"
	"github.com/shopspring/decimal"
)

// StoreInfo, vitrin sayfasının mağaza bilgileridir.
type StoreInfo struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	LogoURL         string `json:"logo_url"`
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	AccentColor     string `json:"accent_color"`
	FontFamily      string `json:"font_family"`
	HomepageTitle   string `json:"homepage_title"`
	HomepageTagline string `json:"homepage_tagline"`
	MetaDescription string `json:"meta_description"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty" form:"instagram"`
	Facebook  string `json:"facebook,omitempty" form:"facebook"`
	Twitter   string `json:"twitter,omitempty" form:"twitter"`
	Whatsapp  string `json:"whatsapp,omitempty" form:"whatsapp"`
}

func (s SocialLinks) Any() bool {
	return s.Instagram != "" || s.Facebook != "" || s.Twitter != "" || s.Whatsapp != ""
}

// StoreConfig, vitrinin tema ve hero ayarlarıdır.
type StoreConfig struct {
	Theme                string      `json:"theme" default:"heritage"`
	ProductsPerRow       int         `json:"products_per_row" default:"4"`
	ShowPrices           bool        `json:"show_prices" default:"true"`
	ShowStockStatus      bool        `json:"show_stock_status" default:"true"`
	ShowFeaturedProducts bool        `json:"show_featured_products" default:"true"`
	ShowCategories       bool        `json:"show_categories" default:"true"`
	HeroTitle            string      `json:"hero_title"`
	HeroSubtitle         string      `json:"hero_subtitle"`
	HeroImage            string      `json:"hero_image"`
	HeroCTAText          string      `json:"hero_cta_text" default:"Shop Now"`
	FooterText           string      `json:"footer_text"`
	SocialLinks          SocialLinks `json:"social_links"`
}

// StoreData, GET /store/{slug} cevabıdır.
type StoreData struct {
	Store        StoreInfo    `json:"store"`
	Config       *StoreConfig `json:"config"`
	ProductCount int          `json:"product_count"`
}

// ResolvedConfig, config boş gelirse varsayılanları, dolu gelirse eksik
// metin ve sayı alanları tamamlanmış kopyayı döndürür. Bool bayraklar
// backend'den geldiği gibi kalır.
func (d StoreData) ResolvedConfig() StoreConfig {
	var def StoreConfig
	if err := defaults.Set(&def); err != nil {
		log.Printf("StoreData.ResolvedConfig - defaults error: %v", err)
	}
	if d.Config == nil {
		def.HeroTitle = d.Store.HomepageTitle
		def.HeroSubtitle = d.Store.HomepageTagline
		return def
	}
	cfg := *d.Config
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.ProductsPerRow <= 0 {
		cfg.ProductsPerRow = def.ProductsPerRow
	}
	if cfg.HeroCTAText == "" {
		cfg.HeroCTAText = def.HeroCTAText
	}
	return cfg
}

// HeroTitle ve HeroSubtitle, vitrin başlığını sırayla config, mağaza ve
// varsayılan metinden seçer.
func (d StoreData) HeroTitle() string {
	if d.Config != nil && d.Config.HeroTitle != "" {
		return d.Config.HeroTitle
	}
	if d.Store.HomepageTitle != "" {
		return d.Store.HomepageTitle
	}
	return "Welcome to " + d.Store.Name
}

func (d StoreData) HeroSubtitle() string {
	if d.Config != nil && d.Config.HeroSubtitle != "" {
		return d.Config.HeroSubtitle
	}
	if d.Store.HomepageTagline != "" {
		return d.Store.HomepageTagline
	}
	return d.Store.Description
}

// StoreProduct, vitrinde listelenen bayi ürünüdür.
type StoreProduct struct {
	ID                int64               `json:"id"`
	ResellerProductID int64               `json:"reseller_product_id"`
	Name              string              `json:"name"`
	Slug              string              `json:"slug"`
	Description       string              `json:"description"`
	ShortDescription  string              `json:"short_description"`
	Price             decimal.Decimal     `json:"price"`
	CompareAtPrice    decimal.NullDecimal `json:"compare_at_price"`
	SKU               string              `json:"sku"`
	Category          string              `json:"category"`
	Subcategory       string              `json:"subcategory"`
	Material          string              `json:"material"`
	Dimensions        string              `json:"dimensions"`
	PrimaryImage      string              `json:"primary_image"`
	Images            []string            `json:"images"`
	IsFeatured        bool                `json:"is_featured"`
	InStock           bool                `json:"in_stock"`
	StockQuantity     *int                `json:"stock_quantity"`
	Tags              []string            `json:"tags"`
	Specifications    map[string]any      `json:"specifications"`
}

// OnSale, karşılaştırma fiyatı satış fiyatından yüksekse true döner.
func (p StoreProduct) OnSale() bool {
	return p.CompareAtPrice.Valid && p.CompareAtPrice.Decimal.GreaterThan(p.Price)
}

// CartItem, ürünü sepete eklenecek satıra çevirir.
func (p StoreProduct) CartItem() CartItem {
	return CartItem{
		ProductID:         p.ID,
		ResellerProductID: p.ResellerProductID,
		Name:              p.Name,
		Price:             p.Price,
		Image:             p.PrimaryImage,
	}
}

type StoreProductPage struct {
	Products []StoreProduct `json:"products"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	Pages    int            `json:"pages"`
	PerPage  int            `json:"per_page"`
}

// StorefrontSettings, bayinin kendi vitrin ayarlarıdır
// (GET /resellers/storefront-config).
type StorefrontSettings struct {
	ID             int64             `json:"id"`
	ResellerID     int64             `json:"reseller_id"`
	Theme          string            `json:"theme"`
	ProductsPerRow int               `json:"products_per_row"`
	ShowPrices     bool              `json:"show_prices"`
	HeroTitle      string            `json:"hero_title"`
	HeroSubtitle   string            `json:"hero_subtitle"`
	HeroImage      string            `json:"hero_image"`
	HeroCTAText    string            `json:"hero_cta_text"`
	FooterText     string            `json:"footer_text"`
	SocialLinks    map[string]string `json:"social_links"`
}

// Social, map halindeki linkleri SocialLinks yapısına çevirir.
func (s StorefrontSettings) Social() SocialLinks {
	return SocialLinks{
		Instagram: s.SocialLinks["instagram"],
		Facebook:  s.SocialLinks["facebook"],
		Twitter:   s.SocialLinks["twitter"],
		Whatsapp:  s.SocialLinks["whatsapp"],
	}
}

type StorefrontSettingsUpdate struct {
	Theme        string       `json:"theme,omitempty"`
	HeroTitle    string       `json:"hero_title,omitempty"`
	HeroSubtitle string       `json:"hero_subtitle,omitempty"`
	HeroImage    string       `json:"hero_image,omitempty"`
	HeroCTAText  string       `json:"hero_cta_text,omitempty"`
	FooterText   string       `json:"footer_text,omitempty"`
	SocialLinks  *SocialLinks `json:"social_links,omitempty"`
}
