package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

const tenantsPath = "/super-admin/tenants"

func tenantPath(id string) string {
	return tenantsPath + "/" + url.PathEscape(id)
}

func (c *Client) ListTenants(ctx context.Context, q domain.ListQuery) (*domain.ListResult[domain.Tenant], error) {
	var out pageResponse[domain.Tenant]
	err := c.do(ctx, request{
		op:     "list_tenants",
		method: http.MethodGet,
		path:   tenantsPath,
		query:  listParams(q),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.result(), nil
}

func (c *Client) CreateTenant(ctx context.Context, in domain.CreateTenantInput) (*domain.Tenant, error) {
	var out domain.Tenant
	if err := c.do(ctx, request{op: "create_tenant", method: http.MethodPost, path: tenantsPath, body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTenant(ctx context.Context, id string, in domain.UpdateTenantInput) (*domain.Tenant, error) {
	var out domain.Tenant
	if err := c.do(ctx, request{op: "update_tenant", method: http.MethodPatch, path: tenantPath(id), body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetTenantStatus(ctx context.Context, id string, status domain.TenantStatus) (*domain.Tenant, error) {
	var out domain.Tenant
	err := c.do(ctx, request{
		op:     "set_tenant_status",
		method: http.MethodPatch,
		path:   tenantPath(id) + "/status",
		body:   statusRequest{Status: status},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTenant removes a tenant. The backend answers with an empty body.
func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	return c.do(ctx, request{op: "delete_tenant", method: http.MethodDelete, path: tenantPath(id)}, nil)
}

// BatchImport sends the full recipe list to one tenant.
func (c *Client) BatchImport(ctx context.Context, tenantID string, recipes []domain.RecipeImportRecord) (*domain.ImportOutcome, error) {
	var out domain.ImportOutcome
	err := c.do(ctx, request{
		op:     "batch_import",
		method: http.MethodPost,
		path:   tenantPath(tenantID) + "/recipes/batch-import",
		body:   recipes,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.SkippedReasons == nil {
		out.SkippedReasons = []string{}
	}
	return &out, nil
}
