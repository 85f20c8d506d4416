package handlers

import (
	"errors"
	"fmt"

	"jewelhub/internal/services"
)

// userMessages, bilinen hataların kullanıcıya gösterilen metinleridir.
// Hata metinlerinin kendisi yalnızca loglara gider.
var userMessages = []struct {
	err  error
	text string
}{
	{services.ErrPasswordMismatch, "Passwords do not match"},
	{services.ErrPasswordTooShort, "Password must be at least 8 characters"},
	{services.ErrInvalidPrice, "Please enter a valid price"},
	{services.ErrMinimumPayout, "Minimum payout is ₹100"},
	{services.ErrInvalidColor, "Please enter a valid hex color like #C0A062"},
	{services.ErrContactFailed, "Failed to send message. Please try again."},
	{errUploadTooLarge, "File is too large (max 5MB)"},
	{errOutOfStock, "This piece is currently out of stock"},
}

// userMessage, err için arayüz metnini, bilinmiyorsa fallback'i döndürür.
func userMessage(err error, fallback string) string {
	var low *services.PriceTooLowError
	if errors.As(err, &low) {
		return fmt.Sprintf("Price must be at least ₹%s (20%% markup)", low.Min.StringFixed(0))
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}
	return fallback
}
