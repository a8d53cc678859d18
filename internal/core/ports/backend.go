package ports

import (
	"context"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// AuthAPI is the backend's authentication surface.
type AuthAPI interface {
	// Login exchanges a phone/password pair for an opaque bearer token.
	Login(ctx context.Context, phone, password string) (string, error)
	// Profile fetches the profile owning token. The token is passed
	// explicitly because no session exists yet while logging in.
	Profile(ctx context.Context, token string) (*domain.CurrentUser, error)
}

// TenantAPI is the backend's shop administration surface.
type TenantAPI interface {
	ListTenants(ctx context.Context, q domain.ListQuery) (*domain.ListResult[domain.Tenant], error)
	CreateTenant(ctx context.Context, in domain.CreateTenantInput) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, id string, in domain.UpdateTenantInput) (*domain.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, status domain.TenantStatus) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

// UserAPI is the backend's user administration surface.
type UserAPI interface {
	ListUsers(ctx context.Context, q domain.ListQuery) (*domain.ListResult[domain.User], error)
	CreateUser(ctx context.Context, in domain.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in domain.UpdateUserInput) (*domain.User, error)
}

// StatsAPI serves the dashboard aggregates.
type StatsAPI interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

// RecipeAPI imports recipe families into one tenant's catalog.
type RecipeAPI interface {
	BatchImport(ctx context.Context, tenantID string, recipes []domain.RecipeImportRecord) (*domain.ImportOutcome, error)
}

// Backend groups every backend surface the console consumes.
type Backend interface {
	AuthAPI
	TenantAPI
	UserAPI
	StatsAPI
	RecipeAPI
}
