package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

func tenantPage(total int, names ...string) domain.ListResult[domain.Tenant] {
	items := make([]domain.Tenant, len(names))
	for i, n := range names {
		items[i] = domain.Tenant{ID: "t-" + n, Name: n, Status: domain.TenantActive}
	}
	return domain.ListResult[domain.Tenant]{Items: items, Total: total, Page: 1, PageSize: 10}
}

func TestTenantStore_FetchStoresPageAndFeedsDirectory(t *testing.T) {
	api := &stubTenantAPI{page: tenantPage(2, "Main St Bakery", "Harbor")}
	dir := mapDirectory{}
	store := NewTenantStore(api, dir, zerolog.Nop())

	store.FetchTenants(context.Background(), domain.ListQuery{Search: "  "})

	view := store.View()
	if len(view.Items) != 2 || view.Total != 2 || view.Loading {
		t.Fatalf("unexpected view: %+v", view)
	}
	if got := api.listCalls()[0]; got.Search != "" || got.Page != 1 || got.PageSize != 10 {
		t.Fatalf("query not normalized: %+v", got)
	}
	if name, ok := dir.Name("t-Harbor"); !ok || name != "Harbor" {
		t.Fatalf("directory not fed: %q %v", name, ok)
	}
}

func TestTenantStore_FetchErrorIsSwallowed(t *testing.T) {
	api := &stubTenantAPI{page: tenantPage(1, "A")}
	store := NewTenantStore(api, nil, zerolog.Nop())
	store.FetchTenants(context.Background(), domain.ListQuery{})

	api.listErr = errors.New("boom")
	store.FetchTenants(context.Background(), domain.ListQuery{Page: 2})

	view := store.View()
	if view.Loading {
		t.Fatalf("loading must be cleared after a failed fetch")
	}
	if len(view.Items) != 1 || view.Items[0].Name != "A" {
		t.Fatalf("previous page should be kept, got %+v", view.Items)
	}
}

func TestTenantStore_StaleResponseIsDropped(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	api := &stubTenantAPI{}
	api.listFn = func(q domain.ListQuery) (*domain.ListResult[domain.Tenant], error) {
		if q.Search == "slow" {
			close(entered)
			<-release
			page := tenantPage(1, "old")
			return &page, nil
		}
		page := tenantPage(1, "new")
		return &page, nil
	}
	store := NewTenantStore(api, nil, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		store.FetchTenants(context.Background(), domain.ListQuery{Search: "slow"})
		close(done)
	}()
	<-entered

	store.FetchTenants(context.Background(), domain.ListQuery{Search: "fast"})
	close(release)
	<-done

	view := store.View()
	if len(view.Items) != 1 || view.Items[0].Name != "new" {
		t.Fatalf("older response overwrote newer one: %+v", view.Items)
	}
	if view.Loading {
		t.Fatalf("expected loading cleared")
	}
}

func TestTenantStore_WriteRefreshesLastPosition(t *testing.T) {
	api := &stubTenantAPI{}
	api.listFn = func(q domain.ListQuery) (*domain.ListResult[domain.Tenant], error) {
		page := tenantPage(25, "x")
		page.Page, page.PageSize = q.Page, q.PageSize
		return &page, nil
	}
	store := NewTenantStore(api, nil, zerolog.Nop())
	ctx := context.Background()

	store.FetchTenants(ctx, domain.ListQuery{Page: 3, PageSize: 5, Search: "bake", Sort: &domain.Sort{Field: "name", Direction: domain.SortAscending}})
	if err := store.CreateTenant(ctx, domain.CreateTenantInput{Name: "New Shop", OwnerID: "u-1"}); err != nil {
		t.Fatalf("CreateTenant returned error: %v", err)
	}

	calls := api.listCalls()
	if len(calls) != 2 {
		t.Fatalf("expected one refresh fetch, got %d calls", len(calls))
	}
	refresh := calls[1]
	if refresh.Page != 3 || refresh.PageSize != 5 {
		t.Fatalf("refresh should reuse page/pageSize, got %+v", refresh)
	}
	if refresh.Search != "" || refresh.Sort != nil {
		t.Fatalf("refresh should not carry search or sort, got %+v", refresh)
	}
}

func TestTenantStore_WriteErrorIsReturned(t *testing.T) {
	backendErr := errors.New("owner not found")
	api := &stubTenantAPI{writeErr: backendErr}
	store := NewTenantStore(api, nil, zerolog.Nop())
	ctx := context.Background()

	if err := store.CreateTenant(ctx, domain.CreateTenantInput{Name: "X", OwnerID: "u-404"}); err != backendErr {
		t.Fatalf("expected backend error verbatim, got %v", err)
	}
	if err := store.DeleteTenant(ctx, "t-1"); err != backendErr {
		t.Fatalf("expected backend error verbatim, got %v", err)
	}
	if n := len(api.listCalls()); n != 0 {
		t.Fatalf("failed writes must not refresh, got %d fetches", n)
	}
}

func TestTenantStore_ValidatesInput(t *testing.T) {
	api := &stubTenantAPI{}
	store := NewTenantStore(api, nil, zerolog.Nop())
	ctx := context.Background()

	var ve *validation.Error
	if err := store.CreateTenant(ctx, domain.CreateTenantInput{Name: "X"}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := store.SetTenantStatus(ctx, "t-1", "PAUSED"); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
	if len(api.created) != 0 || len(api.statuses) != 0 {
		t.Fatalf("invalid input must not reach the backend")
	}
}

func TestTenantStore_SetStatusTwiceIsAccepted(t *testing.T) {
	api := &stubTenantAPI{page: tenantPage(1, "A")}
	store := NewTenantStore(api, nil, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := store.SetTenantStatus(ctx, "t-A", domain.TenantInactive); err != nil {
			t.Fatalf("SetTenantStatus #%d returned error: %v", i+1, err)
		}
	}
	if len(api.statuses) != 2 {
		t.Fatalf("expected both calls forwarded, got %d", len(api.statuses))
	}
}
