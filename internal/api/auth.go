package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lamdoan/classdesk/internal/model"
)

var _ model.AuthAPI = (*Client)(nil)

var _ model.HealthAPI = (*Client)(nil)

// Login authenticates against the backend and returns the session. The
// token is not installed on the client; the session manager decides
// when to call SetToken.
func (c *Client) Login(ctx context.Context, email, password string) (model.Session, error) {
	data, err := c.Request(ctx, http.MethodPost, "/auth/login", model.Credential{Email: email, Password: password})
	if err != nil {
		return model.Session{}, fmt.Errorf("login request failed: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return model.Session{}, fmt.Errorf("failed to decode login response: %w", err)
	}

	return session, nil
}

// Logout notifies the backend that the current token is done with.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.Request(ctx, http.MethodPost, "/auth/logout", nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Verify re-validates the installed token and returns the account it
// belongs to.
func (c *Client) Verify(ctx context.Context) (model.User, error) {
	data, err := c.Request(ctx, http.MethodGet, "/auth/verify", nil)
	if err != nil {
		return model.User{}, fmt.Errorf("verify request failed: %w", err)
	}

	var payload struct {
		User model.User `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.User{}, fmt.Errorf("failed to decode verify response: %w", err)
	}

	return payload.User, nil
}
