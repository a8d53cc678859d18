package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
)

// DashboardView is a copy of the dashboard store state.
type DashboardView struct {
	Stats   *domain.DashboardStats `json:"stats"`
	Loading bool                   `json:"loading"`
	Error   string                 `json:"error,omitempty"`
}

// DashboardStore holds the aggregate counts shown on the landing screen.
type DashboardStore struct {
	api ports.StatsAPI
	log zerolog.Logger

	mu      sync.Mutex
	stats   *domain.DashboardStats
	loading bool
	errMsg  string
}

func NewDashboardStore(api ports.StatsAPI, log zerolog.Logger) *DashboardStore {
	return &DashboardStore{api: api, log: log.With().Str("store", "dashboard").Logger()}
}

// FetchStats loads the aggregates. Unlike the list stores it both records
// the failure in state and returns it, so callers can toast independently.
func (s *DashboardStore) FetchStats(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	stats, err := s.api.DashboardStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch dashboard stats")
		s.errMsg = domain.ErrStatsUnavailable.Error()
		return fmt.Errorf("%w: %w", domain.ErrStatsUnavailable, err)
	}
	s.stats = stats
	return nil
}

func (s *DashboardStore) View() DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := DashboardView{Loading: s.loading, Error: s.errMsg}
	if s.stats != nil {
		st := *s.stats
		v.Stats = &st
	}
	return v
}
