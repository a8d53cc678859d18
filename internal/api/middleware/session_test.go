package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

type fixedSession domain.Session

func (f fixedSession) Snapshot() domain.Session { return domain.Session(f) }

var gateNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func runGate(t *testing.T, sess domain.Session) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/console/tenants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := requireSession(fixedSession(sess), func() time.Time { return gateNow })(func(c echo.Context) error {
		called = true
		user, ok := c.Get(OperatorKey).(*domain.CurrentUser)
		if !ok || user.ID != "u1" {
			t.Fatalf("operator not set: %v", c.Get(OperatorKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireSession_LoggedIn(t *testing.T) {
	rec, called := runGate(t, domain.Session{
		Token:       "tok",
		CurrentUser: &domain.CurrentUser{ID: "u1", Role: domain.RoleSuperAdmin},
		ExpiresAt:   gateNow.Add(time.Hour),
	})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
}

func TestRequireSession_LoggedOut(t *testing.T) {
	rec, called := runGate(t, domain.Session{})
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireSession_WrongRole(t *testing.T) {
	rec, called := runGate(t, domain.Session{
		Token:       "tok",
		CurrentUser: &domain.CurrentUser{ID: "u1", Role: domain.RoleOwner},
	})
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireSession_Expired(t *testing.T) {
	rec, called := runGate(t, domain.Session{
		Token:       "tok",
		CurrentUser: &domain.CurrentUser{ID: "u1", Role: domain.RoleSuperAdmin},
		ExpiresAt:   gateNow.Add(-time.Minute),
	})
	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
