package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Register creates an account. Not authenticated; the server answers with
// the created user on success, which the caller does not need.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	_, err := c.do(ctx, http.MethodPost, "/register/", nil, body, false)
	return err
}

// Login exchanges credentials for a session token. Storing the token is the
// caller's business; the request layer stays stateless.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	raw, err := c.do(ctx, http.MethodPost, "/login/", nil, body, false)
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return resp.Token, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/logout/", nil, nil, true)
	return err
}
