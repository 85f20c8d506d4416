package models

import "github.com/shopspring/decimal"

// Amount, backend'e tırnaksız JSON sayısı olarak giden tutardır. Cevaplar
// ve sepet kayıtları decimal'in varsayılan biçimini kullanır.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
