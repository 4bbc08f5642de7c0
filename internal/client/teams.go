package client

import (
	"context"

	"sporthub-client/internal/model"
)

func (c *Client) Teams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := c.get(ctx, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) Team(ctx context.Context, id string) (*model.Team, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var team model.Team
	if err := c.get(ctx, "/teams/"+id, nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) CreateTeam(ctx context.Context, name, sport string) (*model.Team, error) {
	body := map[string]string{"name": name, "sport": sport}
	var team model.Team
	if err := c.post(ctx, "/teams", body, &team); err != nil {
		return nil, err
	}
	return &team, nil
}
