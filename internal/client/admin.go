package client

import (
	"context"
	"net/url"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
)

func (c *Client) AdminUsers(ctx context.Context, role model.Role) ([]model.User, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", string(role))
	}

	var users []model.User
	if err := c.get(ctx, "/admin/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ApproveCoach(ctx context.Context, coachID string) error {
	if coachID == "" {
		return ErrMissingID
	}
	return c.post(ctx, "/admin/coaches/"+coachID+"/approve", nil, nil)
}

func (c *Client) AdminDashboard(ctx context.Context) (*model.AdminDashboard, error) {
	var dash model.AdminDashboard
	if err := c.get(ctx, "/admin/dashboard", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (c *Client) CreateBanner(ctx context.Context, req dto.BannerRequest) (*model.Banner, error) {
	var banner model.Banner
	if err := c.post(ctx, "/admin/banners", req, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *Client) UpdateBanner(ctx context.Context, id string, req dto.BannerRequest) (*model.Banner, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var banner model.Banner
	if err := c.put(ctx, "/admin/banners/"+id, req, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return c.delete(ctx, "/admin/banners/"+id)
}
