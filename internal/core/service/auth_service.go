package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/pkg/metrics"
)

// AuthService implements the console's login gate.
type AuthService struct {
	api   ports.AuthAPI
	state *SessionState
	log   zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, state *SessionState, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, state: state, log: log}
}

// Login exchanges credentials for a token and admits the caller only if
// the profile behind the token is a super-admin. On any failure the
// session is left logged out.
func (s *AuthService) Login(ctx context.Context, phone, password string) (domain.Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	token, err := s.api.Login(ctx, phone, password)
	if err != nil {
		s.log.Warn().Err(err).Str("phone", phone).Msg("login rejected")
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	profile, err := s.api.Profile(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Str("phone", phone).Msg("profile lookup failed after login")
		return domain.Session{}, fmt.Errorf("login: fetch profile: %w", err)
	}

	if profile.Role != domain.RoleSuperAdmin {
		s.log.Warn().
			Str("user_id", profile.ID).
			Str("role", string(profile.Role)).
			Msg("non super-admin login refused")
		metrics.SessionTransitionsTotal.WithLabelValues("rejected_role").Inc()
		s.state.Clear(ctx)
		return domain.Session{}, domain.ErrNotSuperAdmin
	}

	sess := domain.Session{
		Token:       token,
		CurrentUser: profile,
		ExpiresAt:   tokenExpiry(token),
	}
	if err := s.state.Establish(ctx, sess); err != nil {
		s.log.Warn().Err(err).Msg("session established but could not be persisted")
	}

	metrics.SessionTransitionsTotal.WithLabelValues("login").Inc()
	s.log.Info().Str("user_id", profile.ID).Msg("super-admin logged in")
	return s.state.Snapshot(), nil
}

// Logout clears the session. It never fails.
func (s *AuthService) Logout(ctx context.Context) {
	if s.state.Authenticated() {
		metrics.SessionTransitionsTotal.WithLabelValues("logout").Inc()
	}
	s.state.Clear(ctx)
}

// Current returns the session as the gate sees it; an expired session is
// logged out first.
func (s *AuthService) Current(ctx context.Context) domain.Session {
	return s.state.Current(ctx)
}

// Authenticated reports whether the gate is open.
func (s *AuthService) Authenticated() bool {
	return s.state.Authenticated()
}
