package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry, JWT'nin exp değerini imza doğrulamadan okur. Token backend
// tarafından doğrulanır; burada yalnızca çerez ömrü için kullanılır.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// CookieMaxAge, token çerezi için saniye cinsinden ömür döndürür.
// exp okunamazsa fallback kullanılır.
func CookieMaxAge(token string, now time.Time, fallback time.Duration) int {
	exp, ok := TokenExpiry(token)
	if !ok {
		return int(fallback.Seconds())
	}
	left := exp.Sub(now)
	if left <= 0 {
		return -1
	}
	return int(left.Seconds())
}
