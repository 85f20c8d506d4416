package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"jewelhub/internal/models"
)

func (c *Client) ResellerProfile(ctx context.Context) (*models.Reseller, error) {
	var out models.Reseller
	if err := c.do(ctx, http.MethodGet, "/resellers/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResellerProfile(ctx context.Context, in models.ProfileUpdate) (*models.Reseller, error) {
	var out models.Reseller
	if err := c.do(ctx, http.MethodPut, "/resellers/profile", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBranding(ctx context.Context, in models.BrandingUpdate) (*models.Reseller, error) {
	var out models.Reseller
	if err := c.do(ctx, http.MethodPut, "/resellers/branding", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDomain, alt alan adını ve isteğe bağlı özel alan adını kaydeder.
func (c *Client) UpdateDomain(ctx context.Context, in models.DomainUpdate) (*models.Reseller, error) {
	var out models.Reseller
	if err := c.do(ctx, http.MethodPut, "/resellers/domain", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PublishStore(ctx context.Context) (*models.Reseller, error) {
	var out models.Reseller
	if err := c.do(ctx, http.MethodPost, "/resellers/publish", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UnpublishStore(ctx context.Context) (*models.Reseller, error) {
	var out models.Reseller
	if err := c.do(ctx, http.MethodPost, "/resellers/unpublish", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) StorefrontConfig(ctx context.Context) (*models.StorefrontSettings, error) {
	var out models.StorefrontSettings
	if err := c.do(ctx, http.MethodGet, "/resellers/storefront-config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStorefrontConfig(ctx context.Context, in models.StorefrontSettingsUpdate) (*models.StorefrontSettings, error) {
	var out models.StorefrontSettings
	if err := c.do(ctx, http.MethodPut, "/resellers/storefront-config", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/resellers/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardRevenue, son days gün için günlük ciro dökümünü döndürür.
func (c *Client) DashboardRevenue(ctx context.Context, days int) ([]models.RevenuePoint, error) {
	var out []models.RevenuePoint
	endpoint := "/resellers/dashboard/revenue"
	if days > 0 {
		endpoint += query(map[string]string{"days": strconv.Itoa(days)})
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OnboardingStatus(ctx context.Context) (*models.OnboardingStatus, error) {
	var out models.OnboardingStatus
	if err := c.do(ctx, http.MethodGet, "/resellers/onboarding-status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
