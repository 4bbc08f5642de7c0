package client

import (
	"context"

	"sporthub-client/internal/model"
)

func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// MyBookings lists the authenticated user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.get(ctx, "/bookings/my", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
