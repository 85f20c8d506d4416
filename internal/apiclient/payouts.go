package apiclient

import (
	"context"
	"net/http"

	"jewelhub/internal/models"
)

func (c *Client) PayoutBalance(ctx context.Context) (*models.PayoutBalance, error) {
	var out models.PayoutBalance
	if err := c.do(ctx, http.MethodGet, "/payouts/balance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Payouts(ctx context.Context) ([]models.Payout, error) {
	var out []models.Payout
	if err := c.do(ctx, http.MethodGet, "/payouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestPayout, Amount nil ise kullanılabilir bakiyenin tamamını ister.
func (c *Client) RequestPayout(ctx context.Context, in models.PayoutRequest) (*models.Payout, error) {
	var out models.Payout
	if err := c.do(ctx, http.MethodPost, "/payouts/request", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
