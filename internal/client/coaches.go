package client

import (
	"context"
	"net/url"

	"sporthub-client/internal/model"
)

func (c *Client) Coaches(ctx context.Context, sport, city string) ([]model.Coach, error) {
	q := url.Values{}
	if sport != "" {
		q.Set("sport", sport)
	}
	if city != "" {
		q.Set("city", city)
	}

	var coaches []model.Coach
	if err := c.get(ctx, "/coaches", q, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (c *Client) CoachProfile(ctx context.Context, id string) (*model.Coach, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var coach model.Coach
	if err := c.get(ctx, "/coaches/"+id, nil, &coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

// CoachDashboard returns the authenticated coach's own profile and stats.
func (c *Client) CoachDashboard(ctx context.Context) (*model.Coach, error) {
	var coach model.Coach
	if err := c.get(ctx, "/coaches/dashboard", nil, &coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

func (c *Client) SetCoachAvailability(ctx context.Context, available bool) error {
	body := map[string]bool{"available": available}
	return c.put(ctx, "/coaches/availability", body, nil)
}
