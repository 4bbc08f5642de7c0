package client

import (
	"context"
	"net/url"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
)

// StoreOrders lists orders for the authenticated store, optionally filtered
// by status.
func (c *Client) StoreOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}

	var orders []model.Order
	if err := c.get(ctx, "/orders/store", q, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var order model.Order
	if err := c.get(ctx, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sends the caller-computed next status. There is no
// idempotency key; a duplicate advance at the same status is tolerated by
// relying on the backend being authoritative.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var order model.Order
	if err := c.patch(ctx, "/orders/"+id+"/status", dto.UpdateOrderStatusRequest{Status: status}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
