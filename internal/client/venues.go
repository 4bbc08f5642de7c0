package client

import (
	"context"
	"net/url"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
)

func (c *Client) Venues(ctx context.Context, sport, city string) ([]model.Venue, error) {
	q := url.Values{}
	if sport != "" {
		q.Set("sport", sport)
	}
	if city != "" {
		q.Set("city", city)
	}

	var venues []model.Venue
	if err := c.get(ctx, "/venues", q, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) Venue(ctx context.Context, id string) (*model.Venue, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var venue model.Venue
	if err := c.get(ctx, "/venues/"+id, nil, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) BookVenue(ctx context.Context, venueID string, req dto.BookVenueRequest) (*model.Booking, error) {
	if venueID == "" {
		return nil, ErrMissingID
	}
	var booking model.Booking
	if err := c.post(ctx, "/venues/"+venueID+"/book", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
