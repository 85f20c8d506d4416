// Package cart, sepet kalemlerinin saf işlemlerini içerir. Kalıcılık
// services.CartService'tedir.
package cart

import (
	"github.com/shopspring/decimal"

	"jewelhub/internal/models"
)

// Cart, ürün kimliğine göre tekil kalemlerden oluşur.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

func (c *Cart) index(productID int64) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem, ürün sepette varsa miktarı bir artırır (mevcut fiyat ve ad
// korunur), yoksa miktar 1 ile ekler.
func (c *Cart) AddItem(item models.CartItem) {
	if i := c.index(item.ProductID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

func (c *Cart) RemoveItem(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// UpdateQuantity, miktarı ayarlar; 0 veya altı kalemi siler.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	c.Items[i].Quantity = quantity
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total, fiyat * miktar toplamıdır.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// ItemCount, miktarların toplamıdır.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Len, farklı ürün sayısıdır.
func (c *Cart) Len() int {
	return len(c.Items)
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// OrderItems, sipariş gövdesi için yalnızca ürün kimliği ve miktarı döndürür.
func (c *Cart) OrderItems() []models.OrderItemRequest {
	out := make([]models.OrderItemRequest, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, models.OrderItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}
