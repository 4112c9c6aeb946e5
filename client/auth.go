package client

import (
	"context"
	"fmt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. Storing the token is the
// caller's job, through the credential provider.
func (a *API) Login(ctx context.Context, username, password string) (string, error) {
	req := loginRequest{
		Username: username,
		Password: password,
	}

	resp, err := a.http().
		POST("/auth/login").
		Context().Set(ctx).
		Header().Add("Accept", "application/json").
		Body().AsJSON(req).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	var res loginResponse
	if err := parseResponse(*resp, "Failed to log in", &res); err != nil {
		return "", err
	}

	return res.Token, nil
}

// Logout invalidates the session on the server side.
func (a *API) Logout(ctx context.Context) error {
	resp, err := a.http().
		POST("/auth/logout").
		Context().Set(ctx).
		Send()
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		return requestError(*resp, "Failed to log out")
	}

	return nil
}
