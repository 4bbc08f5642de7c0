package client

import (
	"context"
	"net/url"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
)

// TournamentFilters are optional list filters; empty fields are omitted.
type TournamentFilters struct {
	Sport string
	City  string
	State string
}

func (f TournamentFilters) query() url.Values {
	q := url.Values{}
	if f.Sport != "" {
		q.Set("sport", f.Sport)
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.State != "" {
		q.Set("state", f.State)
	}
	return q
}

func (c *Client) Tournaments(ctx context.Context, filters TournamentFilters) ([]model.Tournament, error) {
	var tournaments []model.Tournament
	if err := c.get(ctx, "/tournaments", filters.query(), &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (c *Client) Tournament(ctx context.Context, id string) (*model.Tournament, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var t model.Tournament
	if err := c.get(ctx, "/tournaments/"+id, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateTournament(ctx context.Context, req dto.TournamentRequest) (*model.Tournament, error) {
	var t model.Tournament
	if err := c.post(ctx, "/tournaments", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTournament(ctx context.Context, id string, req dto.TournamentRequest) (*model.Tournament, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var t model.Tournament
	if err := c.put(ctx, "/tournaments/"+id, req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTournament(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return c.delete(ctx, "/tournaments/"+id)
}

// MyTournaments lists tournaments organized by the authenticated user.
func (c *Client) MyTournaments(ctx context.Context) ([]model.Tournament, error) {
	var tournaments []model.Tournament
	if err := c.get(ctx, "/tournaments/my", nil, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}
