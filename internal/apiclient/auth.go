package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"jewelhub/internal/models"
)

// Register, yeni bayi hesabı açar ve erişim token'ı döndürür.
func (c *Client) Register(ctx context.Context, email, password, businessName string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/register/reseller", models.RegisterRequest{
		Email:        email,
		Password:     password,
		Role:         models.RoleReseller,
		BusinessName: businessName,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/json", models.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword, sıfırlama bağlantısı ister. Backend e-posta var olmasa da
// başarılı döner.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password"+query(map[string]string{"email": email}), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	endpoint := "/auth/reset-password/" + url.PathEscape(token) + query(map[string]string{"new_password": newPassword})
	if err := c.do(ctx, http.MethodPost, endpoint, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
