package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// Login exchanges phone and password for an access token. The request is
// sent without any stored credential. A 400 or 401 answer is reported as
// domain.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, phone, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, request{
		op:        "login",
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      loginRequest{Phone: phone, Password: password},
		anonymous: true,
	}, &out)
	if err != nil {
		switch StatusCode(err) {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return "", fmt.Errorf("%w: %w", domain.ErrInvalidCredentials, err)
		}
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login: backend returned no access token")
	}
	return out.AccessToken, nil
}

// Profile fetches the profile that owns token.
func (c *Client) Profile(ctx context.Context, token string) (*domain.CurrentUser, error) {
	var out profileResponse
	err := c.do(ctx, request{
		op:     "profile",
		method: http.MethodGet,
		path:   "/auth/profile",
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}
