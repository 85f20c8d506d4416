package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"jewelhub/internal/cart"
	"jewelhub/internal/models"
)

// Gösterim amaçlı vergi oranı; kesin tutarı backend hesaplar.
var displayTaxRate = decimal.NewFromFloat(0.18)

const defaultCountry = "India"

// Summary, ödeme sayfasındaki tutar özetidir.
type Summary struct {
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
	ItemCount  int
}

// Summarize, sepet toplamına kargo (0) ve %18 vergi ekler.
func Summarize(c *cart.Cart) Summary {
	subtotal := c.Total()
	tax := subtotal.Mul(displayTaxRate).Round(2)
	shipping := decimal.Zero
	return Summary{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal.Add(shipping).Add(tax),
		ItemCount:  c.ItemCount(),
	}
}

// BuildOrder, form ve sepetten sipariş gövdesi üretir. Kalemler yalnızca
// ürün kimliği ve miktar taşır.
func BuildOrder(form models.CheckoutForm, c *cart.Cart) models.OrderCreate {
	country := strings.TrimSpace(form.ShippingCountry)
	if country == "" {
		country = defaultCountry
	}
	return models.OrderCreate{
		CustomerName:         strings.TrimSpace(form.CustomerName),
		CustomerEmail:        strings.TrimSpace(form.CustomerEmail),
		CustomerPhone:        strings.TrimSpace(form.CustomerPhone),
		ShippingAddressLine1: strings.TrimSpace(form.ShippingAddressLine1),
		ShippingAddressLine2: strings.TrimSpace(form.ShippingAddressLine2),
		ShippingCity:         strings.TrimSpace(form.ShippingCity),
		ShippingState:        strings.TrimSpace(form.ShippingState),
		ShippingPostalCode:   strings.TrimSpace(form.ShippingPostalCode),
		ShippingCountry:      country,
		CustomerNotes:        strings.TrimSpace(form.CustomerNotes),
		Items:                c.OrderItems(),
	}
}
