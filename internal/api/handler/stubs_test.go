package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/pagination"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.EchoValidator{}
	return e
}

func jsonContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// fetchRecorder captures the queries a controller issues.
type fetchRecorder struct {
	mu      sync.Mutex
	queries []domain.ListQuery
}

func (r *fetchRecorder) fetch(_ context.Context, q domain.ListQuery) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
}

func (r *fetchRecorder) all() []domain.ListQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ListQuery(nil), r.queries...)
}

type fixedSource struct {
	loading bool
	total   int
}

func (f fixedSource) Loading() bool { return f.loading }
func (f fixedSource) Total() int    { return f.total }

// manualTimer never fires on its own; tests call fire.
type manualTimer struct {
	mu      sync.Mutex
	f       func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	was := !m.stopped
	m.stopped = true
	return was
}

func (m *manualTimer) fire() {
	m.mu.Lock()
	f, stopped := m.f, m.stopped
	m.mu.Unlock()
	if !stopped {
		f()
	}
}

type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (c *manualClock) afterFunc(_ time.Duration, f func()) pagination.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) last() *manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

func newTable(t *testing.T, rec *fetchRecorder, total int) (*pagination.Controller, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	table := pagination.New(context.Background(), rec.fetch, fixedSource{total: total},
		pagination.WithAfterFunc(clock.afterFunc))
	t.Cleanup(table.Close)
	return table, clock
}

type stubTenantService struct {
	items     []domain.Tenant
	created   []domain.CreateTenantInput
	renamed   map[string]string
	statusErr error
	deleteErr error
}

func (s *stubTenantService) CreateTenant(_ context.Context, in domain.CreateTenantInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	s.created = append(s.created, in)
	return nil
}

func (s *stubTenantService) UpdateTenant(_ context.Context, id string, in domain.UpdateTenantInput) error {
	if s.renamed == nil {
		s.renamed = map[string]string{}
	}
	s.renamed[id] = *in.Name
	return nil
}

func (s *stubTenantService) SetTenantStatus(context.Context, string, domain.TenantStatus) error {
	return s.statusErr
}

func (s *stubTenantService) DeleteTenant(context.Context, string) error {
	return s.deleteErr
}

func (s *stubTenantService) View() service.ListView[domain.Tenant] {
	return service.ListView[domain.Tenant]{ListResult: domain.ListResult[domain.Tenant]{Items: s.items, Total: len(s.items)}}
}

type stubImporter struct {
	recipes []domain.RecipeImportRecord
	targets []domain.ImportTarget
	calls   int
	limit   int
}

func (s *stubImporter) Import(_ context.Context, recipes []domain.RecipeImportRecord, targets []domain.ImportTarget) (*domain.ImportReport, error) {
	s.calls++
	s.recipes = recipes
	s.targets = targets
	return &domain.ImportReport{RecipeCount: len(recipes), TotalImported: len(recipes) * len(targets), SkippedLog: []string{}}, nil
}

func (s *stubImporter) Recent(_ context.Context, limit int) ([]domain.ImportReport, error) {
	s.limit = limit
	return []domain.ImportReport{}, nil
}
