package client

import (
	"context"
	"fmt"

	"sporthub-client/internal/dto"
	"sporthub-client/internal/model"
)

// Login authenticates and persists the session (token, user blob, role)
// under the fixed device-storage keys.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*model.User, error) {
	var auth dto.AuthResponse
	if err := c.post(ctx, "/auth/login", req, &auth); err != nil {
		return nil, err
	}

	if err := c.session.Save(ctx, auth.Token, &auth.User); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &auth.User, nil
}

// Register creates an account and persists the returned session the same way
// Login does.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	var auth dto.AuthResponse
	if err := c.post(ctx, "/auth/register", req, &auth); err != nil {
		return nil, err
	}

	if err := c.session.Save(ctx, auth.Token, &auth.User); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &auth.User, nil
}

// Me fetches the authenticated profile.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*model.User, error) {
	var user model.User
	if err := c.put(ctx, "/auth/profile", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the persisted session. The backend call is best-effort; the
// local purge happens regardless.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/auth/logout", nil, nil); err != nil && !IsNetwork(err) {
		c.log.Debug().Err(err).Msg("logout endpoint rejected, clearing locally anyway")
	}
	return c.session.Clear(ctx)
}
