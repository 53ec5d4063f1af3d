package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iroro1/et-mobile-new/models"
)

// Login authenticates and persists the returned bearer token in the
// token store.
func (c *Client) Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthSession, error) {
	session, err := requestJSON[models.AuthSession](ctx, c, http.MethodPost, "/auth/login", credentials)
	if err != nil {
		return models.AuthSession{}, err
	}
	if session.Token != "" {
		if err := c.tokens.Save(session.Token); err != nil {
			return models.AuthSession{}, err
		}
	}
	return session, nil
}

// Register creates an account and persists the returned token.
func (c *Client) Register(ctx context.Context, data models.RegisterData) (models.AuthSession, error) {
	session, err := requestJSON[models.AuthSession](ctx, c, http.MethodPost, "/auth/register", data)
	if err != nil {
		return models.AuthSession{}, err
	}
	if session.Token != "" {
		if err := c.tokens.Save(session.Token); err != nil {
			return models.AuthSession{}, err
		}
	}
	return session, nil
}

// ForgotPassword asks the backend to start a password reset.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := requestJSON[json.RawMessage](ctx, c, http.MethodPost, "/auth/forgot-password", body)
	return err
}

// ResetPassword completes a password reset started by ForgotPassword.
func (c *Client) ResetPassword(ctx context.Context, data models.ResetPasswordData) error {
	_, err := requestJSON[json.RawMessage](ctx, c, http.MethodPost, "/auth/reset-password", data)
	return err
}

// Logout invalidates the session server-side, then drops the stored
// token. A failed call keeps the token so the caller can retry.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := requestJSON[json.RawMessage](ctx, c, http.MethodPost, "/auth/logout", nil); err != nil {
		return err
	}
	return c.tokens.Clear()
}

// GetUser returns the authenticated user.
func (c *Client) GetUser(ctx context.Context) (models.User, error) {
	return requestJSON[models.User](ctx, c, http.MethodGet, "/auth/user", nil)
}
