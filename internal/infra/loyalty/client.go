package loyalty

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"lessence-checkout/internal/pkg/config"
	"lessence-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// Client invokes the points-award service. Callers treat it as
// fire-and-forget: a failed award is logged, never surfaced to checkout.
type Client struct {
	cfg        config.LoyaltyConfig
	httpClient *http.Client
}

func NewClient(cfg config.LoyaltyConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type awardRequest struct {
	OrderID           uuid.UUID `json:"orderId"`
	PointsPerCurrency int       `json:"pointsPerCurrency"`
}

func (c *Client) AwardPoints(ctx context.Context, orderID uuid.UUID) error {
	if c.cfg.AwardURL == "" {
		return nil
	}

	payload, err := json.Marshal(awardRequest{
		OrderID:           orderID,
		PointsPerCurrency: c.cfg.PointsPerCurrency,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode award request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AwardURL, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build award request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "award request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Newf("award service returned status %d", resp.StatusCode)
	}
	return nil
}
