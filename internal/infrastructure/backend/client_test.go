package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
	"github.com/bakery-saas/superadmin-console/internal/stubbackend"
)

type memCreds struct {
	mu          sync.Mutex
	token       string
	invalidated []string
}

func (m *memCreds) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memCreds) Invalidate(_ context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, token)
	if token == m.token {
		m.token = ""
	}
}

// tickingClock returns strictly increasing times so creation order is
// deterministic.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newStub(t *testing.T, seed bool) (*stubbackend.Server, *httptest.Server) {
	t.Helper()
	stub, err := stubbackend.New(stubbackend.Config{JWTSecret: "test-secret", Seed: seed, Now: tickingClock()}, zerolog.Nop())
	if err != nil {
		t.Fatalf("stub backend: %v", err)
	}
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)
	return stub, srv
}

func loggedIn(t *testing.T, srv *httptest.Server, phone, password string) (*Client, *memCreds) {
	t.Helper()
	creds := &memCreds{}
	c := NewClient(srv.URL, creds)
	token, err := c.Login(context.Background(), phone, password)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	creds.token = token
	return c, creds
}

func addSuperAdmin(t *testing.T, stub *stubbackend.Server) {
	t.Helper()
	role := domain.RoleSuperAdmin
	if _, err := stub.AddUser("Root", "0800000000", "secret1", &role); err != nil {
		t.Fatalf("add super admin: %v", err)
	}
}

func TestClient_SearchAndSortScenario(t *testing.T) {
	stub, srv := newStub(t, false)
	addSuperAdmin(t, stub)
	owner, err := stub.AddUser("Olga", "0811111111", "secret1", nil)
	if err != nil {
		t.Fatalf("add owner: %v", err)
	}
	for _, name := range []string{"Old Main St Cakes", "Harbor Loaves", "Main St Deli", "Main St Bakery"} {
		if _, err := stub.AddTenant(name, owner.ID); err != nil {
			t.Fatalf("add tenant: %v", err)
		}
	}
	c, _ := loggedIn(t, srv, "0800000000", "secret1")

	res, err := c.ListTenants(context.Background(), domain.ListQuery{
		Page:     1,
		PageSize: 10,
		Search:   "Main St",
		Sort:     &domain.Sort{Field: "name", Direction: domain.SortAscending},
	})
	if err != nil {
		t.Fatalf("ListTenants returned error: %v", err)
	}
	if len(res.Items) != 3 || res.Total != 3 {
		t.Fatalf("expected 3 matches, got %d items, total %d", len(res.Items), res.Total)
	}
	want := []string{"Main St Bakery", "Main St Deli", "Old Main St Cakes"}
	for i, name := range want {
		if res.Items[i].Name != name {
			t.Fatalf("item %d = %q, want %q", i, res.Items[i].Name, name)
		}
	}
	if res.Items[0].OwnerName == nil || *res.Items[0].OwnerName != "Olga" {
		t.Fatalf("owner name not mapped: %+v", res.Items[0])
	}
}

func TestClient_QueryEncoding(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[],"meta":{"total":0,"page":1,"limit":10,"lastPage":0}}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, nil)
	ctx := context.Background()

	if _, err := c.ListTenants(ctx, domain.ListQuery{Page: 1, PageSize: 10, Search: ""}); err != nil {
		t.Fatalf("ListTenants returned error: %v", err)
	}
	if _, err := c.ListUsers(ctx, domain.ListQuery{Page: 2, PageSize: 20, Search: "ann", Sort: &domain.Sort{Field: "createdAt", Direction: domain.SortDescending}}); err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}

	if got[0] != "limit=10&page=1" {
		t.Fatalf("empty search must be omitted, got %q", got[0])
	}
	if got[1] != "limit=20&page=2&search=ann&sortBy=createdAt%3Adesc" {
		t.Fatalf("unexpected query: %q", got[1])
	}
}

func TestClient_CreateThenRefetchIncludesTenant(t *testing.T) {
	stub, srv := newStub(t, true)
	owner, err := stub.AddUser("Nina", "0822222222", "secret1", nil)
	if err != nil {
		t.Fatalf("add owner: %v", err)
	}
	c, _ := loggedIn(t, srv, stubbackend.SuperAdminPhone, stubbackend.SuperAdminPassword)
	store := service.NewTenantStore(c, nil, zerolog.Nop())
	ctx := context.Background()

	store.FetchTenants(ctx, domain.ListQuery{Page: 1, PageSize: 10})
	before := store.Total()

	if err := store.CreateTenant(ctx, domain.CreateTenantInput{Name: "Corner Crumbs", OwnerID: owner.ID}); err != nil {
		t.Fatalf("CreateTenant returned error: %v", err)
	}
	if store.Total() != before+1 {
		t.Fatalf("total = %d, want %d", store.Total(), before+1)
	}
	found := false
	for _, tnt := range store.View().Items {
		if tnt.Name == "Corner Crumbs" {
			found = true
		}
	}
	if !found {
		t.Fatalf("new tenant missing from refreshed page")
	}
}

func TestClient_SetSameStatusIsNoop(t *testing.T) {
	_, srv := newStub(t, true)
	c, _ := loggedIn(t, srv, stubbackend.SuperAdminPhone, stubbackend.SuperAdminPassword)
	ctx := context.Background()

	page, err := c.ListTenants(ctx, domain.ListQuery{})
	if err != nil || len(page.Items) == 0 {
		t.Fatalf("expected seeded tenants, got %v", err)
	}
	tnt := page.Items[0]

	again, err := c.SetTenantStatus(ctx, tnt.ID, tnt.Status)
	if err != nil {
		t.Fatalf("SetTenantStatus returned error: %v", err)
	}
	if !again.UpdatedAt.Equal(tnt.UpdatedAt) {
		t.Fatalf("updatedAt changed: %v -> %v", tnt.UpdatedAt, again.UpdatedAt)
	}

	changed, err := c.SetTenantStatus(ctx, tnt.ID, domain.TenantInactive)
	if err != nil {
		t.Fatalf("SetTenantStatus returned error: %v", err)
	}
	if changed.Status != domain.TenantInactive || !changed.UpdatedAt.After(tnt.UpdatedAt) {
		t.Fatalf("expected status change with new updatedAt, got %+v", changed)
	}
}

func TestClient_LoginAndProfile(t *testing.T) {
	_, srv := newStub(t, true)
	c := NewClient(srv.URL, nil)
	ctx := context.Background()

	if _, err := c.Login(ctx, stubbackend.SuperAdminPhone, "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	token, err := c.Login(ctx, stubbackend.OwnerPhone, stubbackend.OwnerPassword)
	if err != nil {
		t.Fatalf("owner login failed: %v", err)
	}
	profile, err := c.Profile(ctx, token)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.Identifier != stubbackend.OwnerPhone || profile.Role == domain.RoleSuperAdmin {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	owner := NewClient(srv.URL, &memCreds{token: token})
	_, err = owner.ListTenants(ctx, domain.ListQuery{})
	if StatusCode(err) != http.StatusForbidden {
		t.Fatalf("expected 403 for non super-admin, got %v", err)
	}
}

func TestClient_UnauthorizedInvalidatesCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"statusCode":401,"message":"invalid token","error":"Unauthorized"}`))
	}))
	defer srv.Close()

	creds := &memCreds{token: "expired"}
	c := NewClient(srv.URL, creds)

	_, err := c.DashboardStats(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized || apiErr.Message != "invalid token" {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Token() != "" || len(creds.invalidated) != 1 {
		t.Fatalf("expected credential invalidated, got %+v", creds.invalidated)
	}
}

func TestClient_ValidationDetails(t *testing.T) {
	_, srv := newStub(t, true)
	c, _ := loggedIn(t, srv, stubbackend.SuperAdminPhone, stubbackend.SuperAdminPassword)
	ctx := context.Background()

	_, err := c.CreateUser(ctx, domain.CreateUserInput{Name: "Short", Phone: "0833333333", Password: "123"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 APIError, got %v", err)
	}
	if len(apiErr.Details) != 1 || apiErr.Details[0] != "password must be at least 6 characters" {
		t.Fatalf("unexpected details: %q", apiErr.Details)
	}

	_, err = c.CreateUser(ctx, domain.CreateUserInput{Name: "Dup", Phone: stubbackend.OwnerPhone, Password: "123456"})
	if StatusCode(err) != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate phone, got %v", err)
	}
}

func TestClient_UsersCarryMemberships(t *testing.T) {
	_, srv := newStub(t, true)
	c, _ := loggedIn(t, srv, stubbackend.SuperAdminPhone, stubbackend.SuperAdminPassword)

	res, err := c.ListUsers(context.Background(), domain.ListQuery{Search: stubbackend.OwnerPhone})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected the seeded owner, got %d users", len(res.Items))
	}
	owner := res.Items[0]
	if len(owner.Memberships) != 2 || owner.Memberships[0].Role != domain.RoleOwner || owner.Memberships[0].TenantName == "" {
		t.Fatalf("unexpected memberships: %+v", owner.Memberships)
	}
}

func TestClient_BatchImportSkipsExisting(t *testing.T) {
	_, srv := newStub(t, true)
	c, _ := loggedIn(t, srv, stubbackend.SuperAdminPhone, stubbackend.SuperAdminPassword)
	ctx := context.Background()

	page, err := c.ListTenants(ctx, domain.ListQuery{})
	if err != nil {
		t.Fatalf("ListTenants returned error: %v", err)
	}
	tenantID := page.Items[0].ID
	recipes := []domain.RecipeImportRecord{
		{Name: "Baguette", Type: domain.RecipeMain, Category: "Bread", Versions: []domain.RecipeVersion{{Ingredients: []domain.DoughIngredient{{Name: "Flour"}}}}},
	}

	first, err := c.BatchImport(ctx, tenantID, recipes)
	if err != nil {
		t.Fatalf("BatchImport returned error: %v", err)
	}
	if first.ImportedCount != 1 || first.SkippedCount != 0 {
		t.Fatalf("unexpected first outcome: %+v", first)
	}

	second, err := c.BatchImport(ctx, tenantID, recipes)
	if err != nil {
		t.Fatalf("BatchImport returned error: %v", err)
	}
	if second.ImportedCount != 0 || second.SkippedCount != 1 || len(second.SkippedReasons) != 1 {
		t.Fatalf("unexpected second outcome: %+v", second)
	}

	if _, err := c.BatchImport(ctx, "missing", recipes); StatusCode(err) != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown tenant, got %v", err)
	}
}
