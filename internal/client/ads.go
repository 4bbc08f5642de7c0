package client

import (
	"context"
	"net/url"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
)

func (c *Client) StoreAds(ctx context.Context) ([]model.Ad, error) {
	var ads []model.Ad
	if err := c.get(ctx, "/ads/store", nil, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (c *Client) CreateAd(ctx context.Context, input dto.CreateAdInput) (*model.Ad, error) {
	var ad model.Ad
	if err := c.post(ctx, "/ads", input, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

// AdminAds lists campaigns for moderation, optionally filtered by status.
func (c *Client) AdminAds(ctx context.Context, status model.AdStatus) ([]model.Ad, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}

	var ads []model.Ad
	if err := c.get(ctx, "/admin/ads", q, &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func (c *Client) ApproveAd(ctx context.Context, id string) (*model.Ad, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var ad model.Ad
	if err := c.post(ctx, "/admin/ads/"+id+"/approve", nil, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

// RejectAd requires a reason; the non-blank precondition is enforced in the
// ad service before any network call.
func (c *Client) RejectAd(ctx context.Context, id, reason string) (*model.Ad, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var ad model.Ad
	if err := c.post(ctx, "/admin/ads/"+id+"/reject", dto.RejectAdRequest{Reason: reason}, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}
