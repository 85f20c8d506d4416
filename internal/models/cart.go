package models

import "github.com/shopspring/decimal"

// CartItem, sepet satırını temsil eder. Quantity her zaman 1 veya daha büyüktür.
type CartItem struct {
	ProductID         int64           `json:"product_id"`
	ResellerProductID int64           `json:"reseller_product_id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity"`
	Image             string          `json:"image,omitempty"`
}

// LineTotal, satırın toplam fiyatıdır.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
