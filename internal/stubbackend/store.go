package stubbackend

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

var (
	errNotFound      = errors.New("not found")
	errPhoneTaken    = errors.New("phone number is already registered")
	errOwnerNotFound = errors.New("owner does not exist")
	errBadSortField  = errors.New("unsupported sort field")
)

type userRecord struct {
	id           string
	name         *string
	phone        string
	passwordHash string
	role         *domain.Role
	status       domain.UserStatus
	createdAt    time.Time
	updatedAt    time.Time
}

type tenantRecord struct {
	id        string
	name      string
	status    domain.TenantStatus
	ownerID   *string
	recipes   []string
	createdAt time.Time
	updatedAt time.Time
}

type membershipRecord struct {
	userID   string
	tenantID string
	role     domain.Role
}

// store is the stub's in-memory platform data.
type store struct {
	mu          sync.RWMutex
	users       map[string]*userRecord
	tenants     map[string]*tenantRecord
	memberships []membershipRecord
	tasks       int
	now         func() time.Time
}

func newStore(now func() time.Time) *store {
	return &store{
		users:   make(map[string]*userRecord),
		tenants: make(map[string]*tenantRecord),
		now:     now,
	}
}

func (s *store) userByPhone(phone string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.phone == phone {
			c := *u
			return &c, true
		}
	}
	return nil, false
}

func (s *store) userByID(id string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	c := *u
	return &c, true
}

func (s *store) createUser(name *string, phone, passwordHash string, role *domain.Role) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.phone == phone {
			return domain.User{}, errPhoneTaken
		}
	}
	now := s.now().UTC()
	u := &userRecord{
		id:           uuid.NewString(),
		name:         name,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		status:       domain.UserActive,
		createdAt:    now,
		updatedAt:    now,
	}
	s.users[u.id] = u
	return s.userLocked(u), nil
}

type userPatch struct {
	name         *string
	passwordHash *string
	status       *domain.UserStatus
}

func (s *store) updateUser(id string, p userPatch) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, errNotFound
	}
	if p.name != nil {
		n := *p.name
		u.name = &n
	}
	if p.passwordHash != nil {
		u.passwordHash = *p.passwordHash
	}
	if p.status != nil {
		u.status = *p.status
	}
	u.updatedAt = s.now().UTC()
	return s.userLocked(u), nil
}

func (s *store) createTenant(name, ownerID string) (domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[ownerID]; !ok {
		return domain.Tenant{}, errOwnerNotFound
	}
	now := s.now().UTC()
	owner := ownerID
	t := &tenantRecord{
		id:        uuid.NewString(),
		name:      name,
		status:    domain.TenantActive,
		ownerID:   &owner,
		createdAt: now,
		updatedAt: now,
	}
	s.tenants[t.id] = t
	s.memberships = append(s.memberships, membershipRecord{userID: ownerID, tenantID: t.id, role: domain.RoleOwner})
	return s.tenantLocked(t), nil
}

func (s *store) tenant(id string) (domain.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants[id]
	if !ok {
		return domain.Tenant{}, errNotFound
	}
	return s.tenantLocked(t), nil
}

func (s *store) renameTenant(id, name string) (domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return domain.Tenant{}, errNotFound
	}
	if t.name != name {
		t.name = name
		t.updatedAt = s.now().UTC()
	}
	return s.tenantLocked(t), nil
}

// setTenantStatus leaves the record untouched when status is unchanged.
func (s *store) setTenantStatus(id string, status domain.TenantStatus) (domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return domain.Tenant{}, errNotFound
	}
	if t.status != status {
		t.status = status
		t.updatedAt = s.now().UTC()
	}
	return s.tenantLocked(t), nil
}

func (s *store) deleteTenant(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tenants[id]; !ok {
		return errNotFound
	}
	delete(s.tenants, id)
	kept := s.memberships[:0]
	for _, m := range s.memberships {
		if m.tenantID != id {
			kept = append(kept, m)
		}
	}
	s.memberships = kept
	return nil
}

// importRecipes adds every recipe whose name is not yet present in the
// tenant, in input order. Names are compared case-insensitively.
func (s *store) importRecipes(tenantID string, names []string) (imported []string, existing []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return nil, nil, errNotFound
	}
	have := make(map[string]struct{}, len(t.recipes))
	for _, n := range t.recipes {
		have[strings.ToLower(n)] = struct{}{}
	}
	for _, n := range names {
		key := strings.ToLower(n)
		if _, dup := have[key]; dup {
			existing = append(existing, n)
			continue
		}
		have[key] = struct{}{}
		t.recipes = append(t.recipes, n)
		imported = append(imported, n)
	}
	if len(imported) > 0 {
		t.updatedAt = s.now().UTC()
	}
	return imported, existing, nil
}

func (s *store) stats() domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipes := 0
	for _, t := range s.tenants {
		recipes += len(t.recipes)
	}
	return domain.DashboardStats{
		TotalTenants: len(s.tenants),
		TotalUsers:   len(s.users),
		TotalRecipes: recipes,
		TotalTasks:   s.tasks,
	}
}

func (s *store) listTenants(q domain.ListQuery) (domain.ListResult[domain.Tenant], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q.Search)
	all := make([]domain.Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		view := s.tenantLocked(t)
		if needle != "" && !tenantMatches(view, s.ownerPhoneLocked(t), needle) {
			continue
		}
		all = append(all, view)
	}

	less, err := tenantOrder(q.Sort)
	if err != nil {
		return domain.ListResult[domain.Tenant]{}, err
	}
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
	return paginate(all, q), nil
}

func (s *store) listUsers(q domain.ListQuery) (domain.ListResult[domain.User], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q.Search)
	all := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if needle != "" && !userMatches(u, needle) {
			continue
		}
		all = append(all, s.userLocked(u))
	}

	less, err := userOrder(q.Sort)
	if err != nil {
		return domain.ListResult[domain.User]{}, err
	}
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
	return paginate(all, q), nil
}

func (s *store) tenantLocked(t *tenantRecord) domain.Tenant {
	out := domain.Tenant{
		ID:          t.id,
		Name:        t.name,
		Status:      t.status,
		RecipeCount: len(t.recipes),
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
	}
	if t.ownerID != nil {
		id := *t.ownerID
		out.OwnerID = &id
		if owner, ok := s.users[id]; ok && owner.name != nil {
			name := *owner.name
			out.OwnerName = &name
		}
	}
	return out
}

func (s *store) ownerPhoneLocked(t *tenantRecord) string {
	if t.ownerID == nil {
		return ""
	}
	if owner, ok := s.users[*t.ownerID]; ok {
		return owner.phone
	}
	return ""
}

func (s *store) userLocked(u *userRecord) domain.User {
	out := domain.User{
		ID:          u.id,
		Phone:       u.phone,
		Status:      u.status,
		CreatedAt:   u.createdAt,
		Memberships: []domain.Membership{},
	}
	if u.name != nil {
		n := *u.name
		out.Name = &n
	}
	if u.role != nil {
		r := *u.role
		out.Role = &r
	}
	for _, m := range s.memberships {
		if m.userID != u.id {
			continue
		}
		name := ""
		if t, ok := s.tenants[m.tenantID]; ok {
			name = t.name
		}
		out.Memberships = append(out.Memberships, domain.Membership{TenantID: m.tenantID, TenantName: name, Role: m.role})
	}
	return out
}

func tenantMatches(t domain.Tenant, ownerPhone, needle string) bool {
	if strings.Contains(strings.ToLower(t.Name), needle) {
		return true
	}
	if t.OwnerName != nil && strings.Contains(strings.ToLower(*t.OwnerName), needle) {
		return true
	}
	return ownerPhone != "" && strings.Contains(ownerPhone, needle)
}

func userMatches(u *userRecord, needle string) bool {
	if strings.Contains(u.phone, needle) {
		return true
	}
	return u.name != nil && strings.Contains(strings.ToLower(*u.name), needle)
}

// tenantOrder returns the comparator for sort. Unsorted lists are newest
// first, ties broken by id.
func tenantOrder(by *domain.Sort) (func(a, b domain.Tenant) bool, error) {
	if by == nil {
		return func(a, b domain.Tenant) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID < b.ID
		}, nil
	}
	var cmp func(a, b domain.Tenant) int
	switch by.Field {
	case "name":
		cmp = func(a, b domain.Tenant) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) }
	case "createdAt":
		cmp = func(a, b domain.Tenant) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "recipeCount":
		cmp = func(a, b domain.Tenant) int { return a.RecipeCount - b.RecipeCount }
	case "status":
		cmp = func(a, b domain.Tenant) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		return nil, errBadSortField
	}
	return directed(cmp, by.Direction, func(a, b domain.Tenant) bool { return a.ID < b.ID }), nil
}

func userOrder(by *domain.Sort) (func(a, b domain.User) bool, error) {
	if by == nil {
		return func(a, b domain.User) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID < b.ID
		}, nil
	}
	var cmp func(a, b domain.User) int
	switch by.Field {
	case "name":
		cmp = func(a, b domain.User) int { return strings.Compare(lowerOrEmpty(a.Name), lowerOrEmpty(b.Name)) }
	case "phone":
		cmp = func(a, b domain.User) int { return strings.Compare(a.Phone, b.Phone) }
	case "createdAt":
		cmp = func(a, b domain.User) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "status":
		cmp = func(a, b domain.User) int { return strings.Compare(string(a.Status), string(b.Status)) }
	default:
		return nil, errBadSortField
	}
	return directed(cmp, by.Direction, func(a, b domain.User) bool { return a.ID < b.ID }), nil
}

func directed[T any](cmp func(a, b T) int, dir domain.SortDirection, tie func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		c := cmp(a, b)
		if c == 0 {
			return tie(a, b)
		}
		if dir == domain.SortDescending {
			return c > 0
		}
		return c < 0
	}
}

func lowerOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.ToLower(*s)
}

func paginate[T any](all []T, q domain.ListQuery) domain.ListResult[T] {
	start := len(all)
	if q.Page-1 < len(all)/q.PageSize+1 {
		start = min((q.Page-1)*q.PageSize, len(all))
	}
	end := len(all)
	if q.PageSize < end-start {
		end = start + q.PageSize
	}
	items := make([]T, end-start)
	copy(items, all[start:end])
	return domain.ListResult[T]{Items: items, Total: len(all), Page: q.Page, PageSize: q.PageSize}
}
