package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"jewelhub/internal/theme"
)

const minPasswordLength = 8

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password shorter than 8 characters")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrMinimumPayout    = errors.New("balance below minimum payout")
	ErrInvalidColor     = errors.New("invalid hex color")
)

// PriceTooLowError, perakende fiyat taban fiyatın %20 üstünde değilse döner.
type PriceTooLowError struct {
	Min decimal.Decimal
}

func (e *PriceTooLowError) Error() string {
	return fmt.Sprintf("price below minimum %s", e.Min.StringFixed(0))
}

// MinimumPayout, çekim talebi için gereken en düşük bakiyedir.
var MinimumPayout = decimal.NewFromInt(100)

var markup = decimal.NewFromFloat(1.2)

// ValidateRegistration, kayıt formunun ilk adımını ağ isteğinden önce denetler.
func ValidateRegistration(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if len([]rune(password)) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateRetailPrice, fiyatı ayrıştırır ve taban fiyatın %20 üstünde
// olduğunu denetler.
func ValidateRetailPrice(raw string, base decimal.Decimal) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	min := base.Mul(markup)
	if price.LessThan(min) {
		return decimal.Zero, &PriceTooLowError{Min: min}
	}
	return price, nil
}

// ValidatePayout, kullanılabilir bakiye en az 100 değilse hata döner.
func ValidatePayout(available decimal.Decimal) error {
	if available.LessThan(MinimumPayout) {
		return ErrMinimumPayout
	}
	return nil
}

func ValidateHexColor(color string) error {
	if !theme.ValidHex(color) {
		return ErrInvalidColor
	}
	return nil
}
