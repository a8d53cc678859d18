package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// OperatorKey is the context key holding the logged-in *domain.CurrentUser.
const OperatorKey = "operator"

// SessionReader exposes the console session to the gate.
type SessionReader interface {
	Snapshot() domain.Session
}

// RequireSession lets a request through only while the console is logged
// in as a super-admin with an unexpired credential.
func RequireSession(sessions SessionReader) echo.MiddlewareFunc {
	return requireSession(sessions, time.Now)
}

func requireSession(sessions SessionReader, now func() time.Time) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := sessions.Snapshot()
			if !sess.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
			}
			if sess.Expired(now()) {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrSessionExpired.Error())
			}

			c.Set(OperatorKey, sess.CurrentUser)
			return next(c)
		}
	}
}
