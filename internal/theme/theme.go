// Package theme, vitrin temalarını ve stil belirteçlerini tanımlar.
package theme

import (
	"regexp"
	"strings"
)

// Theme, dört vitrin şablonundan birini seçer.
type Theme int

const (
	Heritage Theme = iota
	Chic
	Bloom
	Deco
)

// All, ayarlar sayfasındaki seçim sırasıdır.
var All = []Theme{Heritage, Chic, Bloom, Deco}

// Resolve, tema adını büyük/küçük harf duyarsız çözer. Bilinmeyen adlar
// Heritage olur.
func Resolve(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimalist", "chic":
		return Chic
	case "artisan", "bloom":
		return Bloom
	case "deco", "modern":
		return Deco
	default:
		return Heritage
	}
}

// Styles, şablonlarda kullanılan yazı ve köşe sınıflarıdır.
type Styles struct {
	FontDisplay  string
	FontBody     string
	BorderRadius string
	ButtonRadius string
	CardRadius   string
	InputRadius  string
}

func GetStyles(name string) Styles {
	return Resolve(name).Styles()
}

func (t Theme) Styles() Styles {
	switch t {
	case Chic:
		return Styles{
			FontDisplay:  "font-display",
			FontBody:     "font-sans",
			BorderRadius: "rounded-none",
			ButtonRadius: "rounded-none",
			CardRadius:   "rounded-none",
			InputRadius:  "rounded-none",
		}
	case Bloom:
		return Styles{
			FontDisplay:  "font-display",
			FontBody:     "font-body",
			BorderRadius: "rounded-[2rem]",
			ButtonRadius: "rounded-full",
			CardRadius:   "rounded-[2.5rem]",
			InputRadius:  "rounded-2xl",
		}
	case Deco:
		return Styles{
			FontDisplay:  "font-display",
			FontBody:     "font-sans",
			BorderRadius: "rounded-xl",
			ButtonRadius: "rounded-lg",
			CardRadius:   "rounded-2xl",
			InputRadius:  "rounded-md",
		}
	default:
		return Styles{
			FontDisplay:  "font-display",
			FontBody:     "font-sans",
			BorderRadius: "rounded-2xl",
			ButtonRadius: "rounded-full",
			CardRadius:   "rounded-3xl",
			InputRadius:  "rounded-xl",
		}
	}
}

// Name, ayarlarda saklanan kanonik addır.
func (t Theme) Name() string {
	switch t {
	case Chic:
		return "chic"
	case Bloom:
		return "bloom"
	case Deco:
		return "deco"
	default:
		return "heritage"
	}
}

func (t Theme) String() string {
	return t.Name()
}

// Label, ayarlar sayfasında gösterilen addır.
func (t Theme) Label() string {
	switch t {
	case Chic:
		return "Minimalist Chic"
	case Bloom:
		return "Artisan Bloom"
	case Deco:
		return "Modern Deco"
	default:
		return "Royal Heritage"
	}
}

// Component, temayı çizen şablon bileşeninin adıdır.
func (t Theme) Component() string {
	return strings.ReplaceAll(t.Label(), " ", "")
}

// Template, vitrin sayfası için şablon dosyasının adıdır.
func (t Theme) Template() string {
	return "store_" + t.Name() + ".html"
}

// DefaultBrand, mağaza renk vermediğinde kullanılan ana renktir.
func (t Theme) DefaultBrand() string {
	switch t {
	case Chic:
		return "#171717"
	case Bloom:
		return "#1E3A34"
	case Deco:
		return "#D4AF37"
	default:
		return "#722F37"
	}
}

// DefaultAccent, ikincil vurgu rengidir.
func (t Theme) DefaultAccent() string {
	switch t {
	case Chic:
		return "#171717"
	case Bloom, Deco:
		return "#D4AF37"
	default:
		return "#C0A062"
	}
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHex, rengin #RRGGBB biçiminde olup olmadığını söyler.
func ValidHex(color string) bool {
	return hexColor.MatchString(color)
}
