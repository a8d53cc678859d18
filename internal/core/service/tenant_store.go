package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/pkg/metrics"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

// TenantStore keeps the current page of shops and wraps shop mutations.
type TenantStore struct {
	api       ports.TenantAPI
	directory ports.TenantDirectory
	list      *listState[domain.Tenant]
	log       zerolog.Logger
}

// NewTenantStore returns an empty store. directory may be nil.
func NewTenantStore(api ports.TenantAPI, directory ports.TenantDirectory, log zerolog.Logger) *TenantStore {
	return &TenantStore{
		api:       api,
		directory: directory,
		list:      newListState[domain.Tenant](),
		log:       log.With().Str("store", "tenants").Logger(),
	}
}

// FetchTenants replaces the current page with the backend's answer to q.
// Failures are logged and swallowed.
func (s *TenantStore) FetchTenants(ctx context.Context, q domain.ListQuery) {
	q = q.Normalize()
	seq := s.list.begin()

	res, err := s.api.ListTenants(ctx, q)
	if err != nil {
		s.list.finish(seq, nil)
		swallow(s.log, "fetch_tenants", err)
		return
	}
	if !s.list.finish(seq, res) {
		metrics.StaleResponsesTotal.WithLabelValues("tenants").Inc()
		s.log.Debug().Uint64("seq", seq).Msg("stale tenant page dropped")
		return
	}
	if s.directory != nil {
		s.directory.Remember(res.Items)
	}
}

// CreateTenant creates a shop owned by an existing user, then refreshes
// the current page. Errors are returned to the caller.
func (s *TenantStore) CreateTenant(ctx context.Context, in domain.CreateTenantInput) error {
	if err := validation.Struct(in); err != nil {
		return surface(s.log, "create_tenant", err)
	}
	if _, err := s.api.CreateTenant(ctx, in); err != nil {
		return surface(s.log, "create_tenant", err)
	}
	s.log.Info().Str("name", in.Name).Str("owner_id", in.OwnerID).Msg("tenant created")
	s.refresh(ctx)
	return nil
}

// UpdateTenant renames a shop, then refreshes the current page.
func (s *TenantStore) UpdateTenant(ctx context.Context, id string, in domain.UpdateTenantInput) error {
	if err := validation.Struct(in); err != nil {
		return surface(s.log, "update_tenant", err)
	}
	if _, err := s.api.UpdateTenant(ctx, id, in); err != nil {
		return surface(s.log, "update_tenant", err)
	}
	s.log.Info().Str("tenant_id", id).Msg("tenant updated")
	s.refresh(ctx)
	return nil
}

// SetTenantStatus activates or deactivates a shop. Setting the current
// status again is allowed and leaves the shop unchanged.
func (s *TenantStore) SetTenantStatus(ctx context.Context, id string, status domain.TenantStatus) error {
	if !status.Valid() {
		return surface(s.log, "set_tenant_status", &validation.Error{
			Problems: []string{fmt.Sprintf("status must be one of: %s %s", domain.TenantActive, domain.TenantInactive)},
		})
	}
	if _, err := s.api.SetTenantStatus(ctx, id, status); err != nil {
		return surface(s.log, "set_tenant_status", err)
	}
	s.log.Info().Str("tenant_id", id).Str("status", string(status)).Msg("tenant status set")
	s.refresh(ctx)
	return nil
}

// DeleteTenant removes a shop permanently, then refreshes the current page.
func (s *TenantStore) DeleteTenant(ctx context.Context, id string) error {
	if err := s.api.DeleteTenant(ctx, id); err != nil {
		return surface(s.log, "delete_tenant", err)
	}
	s.log.Info().Str("tenant_id", id).Msg("tenant deleted")
	s.refresh(ctx)
	return nil
}

// View returns a copy of the current page.
func (s *TenantStore) View() ListView[domain.Tenant] {
	return s.list.view()
}

// Loading reports whether the newest fetch is still in flight.
func (s *TenantStore) Loading() bool {
	return s.list.isLoading()
}

// Total is the backend's match count for the current query.
func (s *TenantStore) Total() int {
	return s.list.total()
}

// refresh re-fetches the last-known page and page size.
func (s *TenantStore) refresh(ctx context.Context) {
	page, size := s.list.position()
	s.FetchTenants(ctx, domain.ListQuery{Page: page, PageSize: size})
}
