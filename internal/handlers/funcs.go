package handlers

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jewelhub/internal/apiclient"
	"jewelhub/internal/models"
	"jewelhub/internal/theme"
)

// TemplateFuncs, şablonlarda kullanılan yardımcı fonksiyonlardır.
func TemplateFuncs(api *apiclient.Client) template.FuncMap {
	return template.FuncMap{
		"media":       api.MediaURL,
		"money":       formatMoney,
		"date":        formatDate,
		"statusClass": statusClass,
		"initial":     initial,
		"waLink":      whatsappLink,
		"dict":        dict,
		"add":         func(a, b int) int { return a + b },
		"lower":       strings.ToLower,
		"upper":       strings.ToUpper,
		"color":       cssColor,
		"query":       url.QueryEscape,
	}
}

// formatMoney, tutarı en fazla iki ondalık ve binlik ayraçla yazar.
func formatMoney(v interface{}) string {
	var d decimal.Decimal
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x == nil {
			return "0"
		}
		d = *x
	case decimal.NullDecimal:
		if !x.Valid {
			return ""
		}
		d = x.Decimal
	case int:
		d = decimal.NewFromInt(int64(x))
	case int64:
		d = decimal.NewFromInt(x)
	case float64:
		d = decimal.NewFromFloat(x)
	default:
		return fmt.Sprint(v)
	}

	s := d.Round(2).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		return sign + b.String() + "." + frac
	}
	return sign + b.String()
}

func formatDate(v interface{}) string {
	var t time.Time
	switch x := v.(type) {
	case models.Timestamp:
		t = x.Time
	case *models.Timestamp:
		if x == nil {
			return ""
		}
		t = x.Time
	case time.Time:
		t = x
	default:
		return ""
	}
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// statusClass, sipariş ve ödeme durumları için rozet sınıfıdır.
func statusClass(status string) string {
	switch status {
	case models.OrderDelivered, "completed", "paid":
		return "badge-success"
	case models.OrderShipped, models.OrderProcessing, "approved":
		return "badge-info"
	case models.OrderCancelled, "rejected", "failed", "refunded":
		return "badge-danger"
	default:
		return "badge-warning"
	}
}

// cssColor, yalnızca #RRGGBB renkleri CSS'e yazar.
func cssColor(color string) template.CSS {
	if theme.ValidHex(color) {
		return template.CSS(color)
	}
	return template.CSS("inherit")
}

func initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "?"
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0]))
}

// whatsappLink, telefon numarasındaki rakamlardan wa.me bağlantısı üretir.
func whatsappLink(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

// dict, alt şablonlara birden fazla değer geçirmek içindir.
func dict(values ...interface{}) (map[string]interface{}, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	out := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", values[i])
		}
		out[key] = values[i+1]
	}
	return out, nil
}
