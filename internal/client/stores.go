package client

import (
	"context"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
)

func (c *Client) StoreDashboard(ctx context.Context) (*model.StoreDashboard, error) {
	var dash model.StoreDashboard
	if err := c.get(ctx, "/stores/dashboard", nil, &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (c *Client) MyStoreProfile(ctx context.Context) (*model.StoreProfile, error) {
	var profile model.StoreProfile
	if err := c.get(ctx, "/stores/my-profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateStoreProfile(ctx context.Context, profile model.StoreProfile) (*model.StoreProfile, error) {
	var updated model.StoreProfile
	if err := c.put(ctx, "/stores/profile", profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) StoreProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.get(ctx, "/stores/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	var product model.Product
	if err := c.post(ctx, "/stores/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (*model.Product, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var product model.Product
	if err := c.put(ctx, "/stores/products/"+id, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return c.delete(ctx, "/stores/products/"+id)
}

// SetProductQuantity replaces the inventory quantity outright. Validation of
// the value happens in the inventory service before this is reached.
func (c *Client) SetProductQuantity(ctx context.Context, id string, quantity int) (*model.Product, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var product model.Product
	if err := c.patch(ctx, "/stores/products/"+id+"/quantity", dto.SetQuantityRequest{Quantity: quantity}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SetProductActive toggles availability independently of quantity.
func (c *Client) SetProductActive(ctx context.Context, id string, active bool) (*model.Product, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var product model.Product
	if err := c.patch(ctx, "/stores/products/"+id+"/active", dto.SetActiveRequest{IsActive: active}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
