package client

import (
	"context"

	"sporthub-client/internal/model"
)

func (c *Client) Banners(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	if err := c.get(ctx, "/banners", nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// TrackBannerClick is fire-and-forget analytics; failures are surfaced but
// screens typically ignore them.
func (c *Client) TrackBannerClick(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return c.post(ctx, "/banners/"+id+"/click", nil, nil)
}
