package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// Authenticator is the login gate behind the session endpoints.
type Authenticator interface {
	Login(ctx context.Context, phone, password string) (domain.Session, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) domain.Session
}

type SessionHandler struct {
	auth Authenticator
}

func NewSessionHandler(auth Authenticator) *SessionHandler {
	return &SessionHandler{auth: auth}
}

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool                `json:"authenticated"`
	User          *domain.CurrentUser `json:"user,omitempty"`
	ExpiresAt     *time.Time          `json:"expiresAt,omitempty"`
}

func sessionView(s domain.Session) sessionResponse {
	if !s.Authenticated() {
		return sessionResponse{}
	}
	resp := sessionResponse{Authenticated: true, User: s.CurrentUser}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}

// Login opens a console session.
//
// @Summary      Log in as super-admin
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Phone number and password"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /console/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	sess, err := h.auth.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionView(sess))
}

// Logout ends the console session. It always succeeds.
//
// @Summary      Log out
// @Tags         session
// @Success      204
// @Router       /console/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.auth.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports whether the console is logged in and as whom.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /console/session [get]
func (h *SessionHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionView(h.auth.Current(c.Request().Context())))
}
