package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/pkg/metrics"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

// allUsersLimit is the page size used to load every user at once for
// owner pickers.
const allUsersLimit = 9999

// UserStore keeps the current page of users plus a full selection list.
type UserStore struct {
	api  ports.UserAPI
	list *listState[domain.User]
	log  zerolog.Logger

	mu         sync.Mutex
	all        []domain.User
	allLoading bool
}

func NewUserStore(api ports.UserAPI, log zerolog.Logger) *UserStore {
	return &UserStore{
		api:  api,
		list: newListState[domain.User](),
		all:  []domain.User{},
		log:  log.With().Str("store", "users").Logger(),
	}
}

// FetchUsers replaces the current page. Failures are logged and swallowed.
func (s *UserStore) FetchUsers(ctx context.Context, q domain.ListQuery) {
	q = q.Normalize()
	seq := s.list.begin()

	res, err := s.api.ListUsers(ctx, q)
	if err != nil {
		s.list.finish(seq, nil)
		swallow(s.log, "fetch_users", err)
		return
	}
	if !s.list.finish(seq, res) {
		metrics.StaleResponsesTotal.WithLabelValues("users").Inc()
		s.log.Debug().Uint64("seq", seq).Msg("stale user page dropped")
	}
}

// FetchAllUsers loads every user into the selection list. Failures are
// logged and swallowed.
func (s *UserStore) FetchAllUsers(ctx context.Context) {
	s.mu.Lock()
	s.allLoading = true
	s.mu.Unlock()

	res, err := s.api.ListUsers(ctx, domain.ListQuery{Page: 1, PageSize: allUsersLimit})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.allLoading = false
	if err != nil {
		swallow(s.log, "fetch_all_users", err)
		return
	}
	s.all = res.Items
	if s.all == nil {
		s.all = []domain.User{}
	}
}

// CreateUser creates a standalone account, then refreshes the current page.
func (s *UserStore) CreateUser(ctx context.Context, in domain.CreateUserInput) error {
	if err := validation.Struct(in); err != nil {
		return surface(s.log, "create_user", err)
	}
	if _, err := s.api.CreateUser(ctx, in); err != nil {
		return surface(s.log, "create_user", err)
	}
	s.log.Info().Str("phone", in.Phone).Msg("user created")
	s.refresh(ctx)
	return nil
}

// UpdateUser changes a user's name, password or status, then refreshes
// the current page.
func (s *UserStore) UpdateUser(ctx context.Context, id string, in domain.UpdateUserInput) error {
	if err := validation.Struct(in); err != nil {
		return surface(s.log, "update_user", err)
	}
	if _, err := s.api.UpdateUser(ctx, id, in); err != nil {
		return surface(s.log, "update_user", err)
	}
	s.log.Info().Str("user_id", id).Msg("user updated")
	s.refresh(ctx)
	return nil
}

func (s *UserStore) View() ListView[domain.User] {
	return s.list.view()
}

// AllUsers returns a copy of the selection list.
func (s *UserStore) AllUsers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.all))
	copy(out, s.all)
	return out
}

// AllUsersLoading reports whether the selection list is being loaded.
func (s *UserStore) AllUsersLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allLoading
}

func (s *UserStore) Loading() bool {
	return s.list.isLoading()
}

func (s *UserStore) Total() int {
	return s.list.total()
}

func (s *UserStore) refresh(ctx context.Context) {
	page, size := s.list.position()
	s.FetchUsers(ctx, domain.ListQuery{Page: page, PageSize: size})
}
