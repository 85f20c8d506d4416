package models

import "github.com/shopspring/decimal"

// Sipariş durumları
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderStatuses, sipariş filtresinde gösterilen durumlardır.
var OrderStatuses = []string{OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// OrderItemRequest, sipariş oluştururken gönderilen satırdır. Fiyat alanı
// yoktur; fiyatı backend belirler.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderCreate, POST /orders/storefront/{slug} gövdesidir.
type OrderCreate struct {
	CustomerName         string             `json:"customer_name"`
	CustomerEmail        string             `json:"customer_email"`
	CustomerPhone        string             `json:"customer_phone,omitempty"`
	ShippingAddressLine1 string             `json:"shipping_address_line1"`
	ShippingAddressLine2 string             `json:"shipping_address_line2,omitempty"`
	ShippingCity         string             `json:"shipping_city"`
	ShippingState        string             `json:"shipping_state"`
	ShippingPostalCode   string             `json:"shipping_postal_code"`
	ShippingCountry      string             `json:"shipping_country"`
	CustomerNotes        string             `json:"customer_notes,omitempty"`
	Items                []OrderItemRequest `json:"items"`
}

// CheckoutForm, ödeme sayfası formunu temsil eder.
type CheckoutForm struct {
	CustomerName         string `form:"customer_name" binding:"required"`
	CustomerEmail        string `form:"customer_email" binding:"required,email"`
	CustomerPhone        string `form:"customer_phone" binding:"required"`
	ShippingAddressLine1 string `form:"shipping_address_line1" binding:"required"`
	ShippingAddressLine2 string `form:"shipping_address_line2"`
	ShippingCity         string `form:"shipping_city" binding:"required"`
	ShippingState        string `form:"shipping_state" binding:"required"`
	ShippingPostalCode   string `form:"shipping_postal_code" binding:"required"`
	ShippingCountry      string `form:"shipping_country"`
	CustomerNotes        string `form:"customer_notes"`
}

type OrderItem struct {
	ID               int64           `json:"id"`
	ProductID        int64           `json:"product_id"`
	ProductName      string          `json:"product_name"`
	ProductSKU       string          `json:"product_sku"`
	ProductImage     string          `json:"product_image"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         int             `json:"quantity"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}

// Order, backend'in döndürdüğü siparişi temsil eder.
type Order struct {
	ID                   int64           `json:"id"`
	OrderNumber          string          `json:"order_number"`
	ResellerID           int64           `json:"reseller_id"`
	CustomerEmail        string          `json:"customer_email"`
	CustomerName         string          `json:"customer_name"`
	CustomerPhone        string          `json:"customer_phone"`
	ShippingAddressLine1 string          `json:"shipping_address_line1"`
	ShippingAddressLine2 string          `json:"shipping_address_line2"`
	ShippingCity         string          `json:"shipping_city"`
	ShippingState        string          `json:"shipping_state"`
	ShippingPostalCode   string          `json:"shipping_postal_code"`
	ShippingCountry      string          `json:"shipping_country"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	ShippingCost         decimal.Decimal `json:"shipping_cost"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	ResellerCommission   decimal.Decimal `json:"reseller_commission"`
	Status               string          `json:"status"`
	PaymentStatus        string          `json:"payment_status"`
	TrackingNumber       string          `json:"tracking_number"`
	TrackingURL          string          `json:"tracking_url"`
	Items                []OrderItem     `json:"items"`
	CreatedAt            Timestamp       `json:"created_at"`
}

// OrderResult, vitrin siparişi oluşturulduğunda dönen cevaptır.
type OrderResult struct {
	OrderNumber string          `json:"order_number"`
	OrderID     int64           `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Message     string          `json:"message"`
}
