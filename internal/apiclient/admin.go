package apiclient

import (
	"context"
	"net/http"

	"jewelhub/internal/models"
)

// AdminDashboard, platform özetini döndürür. Hata durumunda durum kodu
// *Error içinde korunur; 403 yönetici olmayan kullanıcı demektir.
func (c *Client) AdminDashboard(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	status, err := c.rawGet(ctx, "/admin/dashboard", true, &out)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &Error{StatusCode: status, Message: "Failed to load stats"}
	}
	return &out, nil
}

// IsForbidden, hatanın 403 olup olmadığını söyler.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}
