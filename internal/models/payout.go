package models

import "github.com/shopspring/decimal"

// PayoutBalance, GET /payouts/balance cevabıdır.
type PayoutBalance struct {
	Available   decimal.Decimal `json:"available"`
	Pending     decimal.Decimal `json:"pending"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	TotalEarned decimal.Decimal `json:"total_earned"`
}

type Payout struct {
	ID               int64           `json:"id"`
	ResellerID       int64           `json:"reseller_id"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference string          `json:"payment_reference"`
	RequestedAt      Timestamp       `json:"requested_at"`
	ProcessedAt      *Timestamp      `json:"processed_at"`
	CompletedAt      *Timestamp      `json:"completed_at"`
}

// PayoutRequest, Amount boşsa kullanılabilir bakiyenin tamamı istenir.
type PayoutRequest struct {
	Amount        *Amount `json:"amount,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

// DashboardStats, bayi paneli özetidir.
type DashboardStats struct {
	TotalProducts       int             `json:"total_products"`
	TotalOrders         int             `json:"total_orders"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalCommission     decimal.Decimal `json:"total_commission"`
	PendingPayout       decimal.Decimal `json:"pending_payout"`
	OrdersThisMonth     int             `json:"orders_this_month"`
	RevenueThisMonth    decimal.Decimal `json:"revenue_this_month"`
	CommissionThisMonth decimal.Decimal `json:"commission_this_month"`
}

// AdminStats, GET /admin/dashboard cevabıdır.
type AdminStats struct {
	Resellers struct {
		Total        int `json:"total"`
		Active       int `json:"active"`
		NewThisMonth int `json:"new_this_month"`
	} `json:"resellers"`
	Manufacturers struct {
		Total int `json:"total"`
	} `json:"manufacturers"`
	Products struct {
		Total int `json:"total"`
	} `json:"products"`
	Orders struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		ThisMonth int `json:"this_month"`
	} `json:"orders"`
	Revenue struct {
		Total           decimal.Decimal `json:"total"`
		ThisMonth       decimal.Decimal `json:"this_month"`
		TotalCommission decimal.Decimal `json:"total_commission"`
	} `json:"revenue"`
	Payouts struct {
		Pending int `json:"pending"`
	} `json:"payouts"`
}

// RevenuePoint, günlük ciro dökümünün bir satırıdır.
type RevenuePoint struct {
	Period     string          `json:"period"`
	Revenue    decimal.Decimal `json:"revenue"`
	Orders     int             `json:"orders"`
	Commission decimal.Decimal `json:"commission"`
}
