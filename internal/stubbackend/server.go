// Package stubbackend is an in-memory stand-in for the bakery platform
// API. It serves the endpoints the console consumes, with seeded accounts,
// bcrypt password hashes and HS256 access tokens, for local development
// and tests.
package stubbackend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

// Seeded credentials.
const (
	SuperAdminPhone    = "13800000000"
	SuperAdminPassword = "admin123"
	OwnerPhone         = "13900000001"
	OwnerPassword      = "owner123"
)

// Config tunes the stub.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Seed adds the super-admin and owner accounts plus two shops.
	Seed bool
	Now  func() time.Time
}

// Server is the stub platform API.
type Server struct {
	echo  *echo.Echo
	store *store
	log   zerolog.Logger
}

// New builds the stub and registers its routes.
func New(cfg Config, log zerolog.Logger) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("stub backend: jwt secret is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Server{
		echo:  echo.New(),
		store: newStore(cfg.Now),
		log:   log.With().Str("component", "stub_backend").Logger(),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Validator = validation.EchoValidator{}
	s.echo.HTTPErrorHandler = newErrorHandler(s.log)
	s.echo.Use(echomiddleware.Recover())
	s.echo.Use(echomiddleware.RequestID())

	tokens := issuer{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL, now: cfg.Now}
	h := &handlers{store: s.store, tokens: tokens}
	authed := requireToken(tokens)

	s.echo.POST("/auth/login", h.login)
	s.echo.GET("/auth/profile", h.profile, authed)

	admin := s.echo.Group("/super-admin", authed, requireRole(domain.RoleSuperAdmin))
	admin.GET("/tenants", h.listTenants)
	admin.POST("/tenants", h.createTenant)
	admin.PATCH("/tenants/:id", h.updateTenant)
	admin.PATCH("/tenants/:id/status", h.setTenantStatus)
	admin.DELETE("/tenants/:id", h.deleteTenant)
	admin.POST("/tenants/:tenantId/recipes/batch-import", h.batchImport)
	admin.GET("/users", h.listUsers)
	admin.POST("/users", h.createUser)
	admin.PATCH("/users/:id", h.updateUser)
	admin.GET("/dashboard-stats", h.dashboardStats)

	if cfg.Seed {
		if err := s.seed(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Server) seed() error {
	super := domain.RoleSuperAdmin
	if _, err := s.AddUser("Platform Admin", SuperAdminPhone, SuperAdminPassword, &super); err != nil {
		return err
	}
	owner, err := s.AddUser("Olivia Owner", OwnerPhone, OwnerPassword, nil)
	if err != nil {
		return err
	}
	for _, name := range []string{"Main St Bakery", "Harbor Loaves"} {
		if _, err := s.AddTenant(name, owner.ID); err != nil {
			return err
		}
	}
	s.SetTaskCount(12)
	s.log.Info().Str("phone", SuperAdminPhone).Msg("seeded super-admin account")
	return nil
}

// AddUser creates an account with a bcrypt-hashed password.
func (s *Server) AddUser(name, phone, password string, role *domain.Role) (domain.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return domain.User{}, err
	}
	return s.store.createUser(&name, phone, hash, role)
}

// AddTenant creates an active shop owned by ownerID.
func (s *Server) AddTenant(name, ownerID string) (domain.Tenant, error) {
	return s.store.createTenant(name, ownerID)
}

// SetTaskCount sets the task total reported by the dashboard.
func (s *Server) SetTaskCount(n int) {
	s.store.mu.Lock()
	s.store.tasks = n
	s.store.mu.Unlock()
}

// Handler exposes the routes, e.g. for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("stub backend listening")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
