package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

const usersPath = "/super-admin/users"

func (c *Client) ListUsers(ctx context.Context, q domain.ListQuery) (*domain.ListResult[domain.User], error) {
	var out pageResponse[userResponse]
	err := c.do(ctx, request{
		op:     "list_users",
		method: http.MethodGet,
		path:   usersPath,
		query:  listParams(q),
	}, &out)
	if err != nil {
		return nil, err
	}

	res := pageResponse[domain.User]{Data: make([]domain.User, len(out.Data)), Meta: out.Meta}
	for i, u := range out.Data {
		res.Data[i] = u.toDomain()
	}
	return res.result(), nil
}

func (c *Client) CreateUser(ctx context.Context, in domain.CreateUserInput) (*domain.User, error) {
	var out userResponse
	if err := c.do(ctx, request{op: "create_user", method: http.MethodPost, path: usersPath, body: in}, &out); err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error) {
	var out userResponse
	err := c.do(ctx, request{
		op:     "update_user",
		method: http.MethodPatch,
		path:   usersPath + "/" + url.PathEscape(id),
		body:   in,
	}, &out)
	if err != nil {
		return nil, err
	}
	u := out.toDomain()
	return &u, nil
}

// DashboardStats fetches the platform-wide aggregate counts.
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.do(ctx, request{op: "dashboard_stats", method: http.MethodGet, path: "/super-admin/dashboard-stats"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
