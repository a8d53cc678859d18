package service

import (
	"context"
	"sync"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

type stubAuthAPI struct {
	token    string
	loginErr error
	profile  *domain.CurrentUser
	gotToken string
}

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.token, nil
}

func (s *stubAuthAPI) Profile(_ context.Context, token string) (*domain.CurrentUser, error) {
	s.gotToken = token
	u := *s.profile
	return &u, nil
}

type memSessionRepo struct {
	mu      sync.Mutex
	stored  *domain.Session
	deletes int
}

func (r *memSessionRepo) Load(context.Context) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stored == nil {
		return nil, nil
	}
	s := *r.stored
	return &s, nil
}

func (r *memSessionRepo) Save(_ context.Context, s domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = &s
	return nil
}

func (r *memSessionRepo) Delete(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = nil
	r.deletes++
	return nil
}

// stubTenantAPI answers list calls from a fixed page unless a hook is set.
type stubTenantAPI struct {
	mu      sync.Mutex
	page    domain.ListResult[domain.Tenant]
	listErr error
	listFn  func(q domain.ListQuery) (*domain.ListResult[domain.Tenant], error)
	queries []domain.ListQuery

	writeErr error
	created  []domain.CreateTenantInput
	statuses []domain.TenantStatus
	deleted  []string
}

func (s *stubTenantAPI) ListTenants(_ context.Context, q domain.ListQuery) (*domain.ListResult[domain.Tenant], error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	fn, err, page := s.listFn, s.listErr, s.page
	s.mu.Unlock()

	if fn != nil {
		return fn(q)
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *stubTenantAPI) CreateTenant(_ context.Context, in domain.CreateTenantInput) (*domain.Tenant, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	s.created = append(s.created, in)
	return &domain.Tenant{ID: "t-new", Name: in.Name, Status: domain.TenantActive}, nil
}

func (s *stubTenantAPI) UpdateTenant(_ context.Context, id string, in domain.UpdateTenantInput) (*domain.Tenant, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	return &domain.Tenant{ID: id, Name: *in.Name}, nil
}

func (s *stubTenantAPI) SetTenantStatus(_ context.Context, id string, status domain.TenantStatus) (*domain.Tenant, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	s.statuses = append(s.statuses, status)
	return &domain.Tenant{ID: id, Status: status}, nil
}

func (s *stubTenantAPI) DeleteTenant(_ context.Context, id string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubTenantAPI) listCalls() []domain.ListQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ListQuery, len(s.queries))
	copy(out, s.queries)
	return out
}

type stubUserAPI struct {
	page     domain.ListResult[domain.User]
	listErr  error
	writeErr error
	queries  []domain.ListQuery
	updates  []domain.UpdateUserInput
}

func (s *stubUserAPI) ListUsers(_ context.Context, q domain.ListQuery) (*domain.ListResult[domain.User], error) {
	s.queries = append(s.queries, q)
	if s.listErr != nil {
		return nil, s.listErr
	}
	page := s.page
	return &page, nil
}

func (s *stubUserAPI) CreateUser(_ context.Context, in domain.CreateUserInput) (*domain.User, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	return &domain.User{ID: "u-new", Name: &in.Name, Phone: in.Phone}, nil
}

func (s *stubUserAPI) UpdateUser(_ context.Context, id string, in domain.UpdateUserInput) (*domain.User, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	s.updates = append(s.updates, in)
	return &domain.User{ID: id}, nil
}

type mapDirectory map[string]string

func (d mapDirectory) Remember(tenants []domain.Tenant) {
	for _, t := range tenants {
		d[t.ID] = t.Name
	}
}

func (d mapDirectory) Name(id string) (string, bool) {
	n, ok := d[id]
	return n, ok
}

func strPtr(s string) *string { return &s }
