package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/pkg/metrics"
)

// SessionState is the one container for the console session. It is
// created at startup, restored from its repository, and cleared on logout
// or when the backend rejects the credential.
type SessionState struct {
	mu      sync.RWMutex
	current domain.Session
	repo    ports.SessionRepository
	log     zerolog.Logger
	now     func() time.Time
}

// NewSessionState returns a logged-out state. repo may be nil, in which
// case the session lives only in memory.
func NewSessionState(repo ports.SessionRepository, log zerolog.Logger) *SessionState {
	return &SessionState{repo: repo, log: log, now: time.Now}
}

// Restore loads the persisted session. Sessions that fail the gate or whose
// token has already expired are discarded and removed from storage.
func (s *SessionState) Restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}

	switch {
	case stored.Expired(s.now()):
		s.log.Info().Time("expired_at", stored.ExpiresAt).Msg("persisted session expired, discarding")
		metrics.SessionTransitionsTotal.WithLabelValues("expired").Inc()
		return s.repo.Delete(ctx)
	case !stored.Authenticated():
		s.log.Warn().Msg("persisted session is not a super-admin session, discarding")
		return s.repo.Delete(ctx)
	}

	s.mu.Lock()
	s.current = *stored
	s.mu.Unlock()

	s.log.Info().Str("user_id", stored.CurrentUser.ID).Msg("session restored")
	return nil
}

// Snapshot returns a copy of the current session.
func (s *SessionState) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.current
	if out.CurrentUser != nil {
		u := *out.CurrentUser
		out.CurrentUser = &u
	}
	return out
}

// Token returns the bearer credential, or "" when logged out.
func (s *SessionState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Authenticated reports whether the console gate is open.
func (s *SessionState) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Authenticated() && !s.current.Expired(s.now())
}

// Establish replaces the session and persists it. The in-memory session is
// set even if persisting fails; the error is returned so callers can warn.
func (s *SessionState) Establish(ctx context.Context, sess domain.Session) error {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	if s.repo == nil {
		return nil
	}
	return s.repo.Save(ctx, sess)
}

// Clear logs the session out and removes the persisted entry.
func (s *SessionState) Clear(ctx context.Context) {
	s.mu.Lock()
	s.current = domain.Session{}
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Delete(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete persisted session")
	}
}

// Current returns the live session. A session whose token has expired is
// cleared and reported as logged out.
func (s *SessionState) Current(ctx context.Context) domain.Session {
	sess := s.Snapshot()
	if !sess.Authenticated() || !sess.Expired(s.now()) {
		return sess
	}

	s.mu.RLock()
	stale := sess.Token != s.current.Token
	s.mu.RUnlock()
	if stale {
		return s.Snapshot()
	}

	s.log.Info().Time("expired_at", sess.ExpiresAt).Msg("session expired, logging out")
	metrics.SessionTransitionsTotal.WithLabelValues("expired").Inc()
	s.Clear(ctx)
	return domain.Session{}
}

// Invalidate is called by the API client when the backend answers 401 to
// a request that carried token. A token that no longer matches the session
// (e.g. after a re-login) is ignored.
func (s *SessionState) Invalidate(ctx context.Context, token string) {
	s.mu.RLock()
	stale := token == "" || token != s.current.Token
	s.mu.RUnlock()
	if stale {
		return
	}

	s.log.Warn().Msg("backend rejected credential, logging out")
	metrics.SessionTransitionsTotal.WithLabelValues("unauthorized").Inc()
	s.Clear(ctx)
}
