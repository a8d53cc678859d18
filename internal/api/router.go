// Package api is the console server: the JSON surface a thin browser view
// drives the console through.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bakery-saas/superadmin-console/internal/api/docs"
	"github.com/bakery-saas/superadmin-console/internal/api/handler"
	"github.com/bakery-saas/superadmin-console/internal/api/middleware"
	"github.com/bakery-saas/superadmin-console/internal/core/pagination"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

// Deps is everything the router serves. Mongo, Redis and Metrics may be nil.
type Deps struct {
	Auth        handler.Authenticator
	Session     middleware.SessionReader
	Dashboard   handler.DashboardService
	Tenants     handler.TenantService
	TenantTable *pagination.Controller
	Users       handler.UserService
	UserTable   *pagination.Controller
	Imports     handler.Importer

	Mongo *mongo.Database
	Redis *redis.Client
	// Metrics receives the HTTP metrics. Nil means the default registry.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.EchoValidator{}
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(metricsMiddleware(deps.Metrics))

	// --- Probes, metrics and docs (no session required) ---
	health := handler.NewHealthHandler(deps.Mongo, deps.Redis)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", metricsHandler(deps.Metrics))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Session ---
	sessions := handler.NewSessionHandler(deps.Auth)
	e.POST("/console/login", sessions.Login)
	e.POST("/console/logout", sessions.Logout)
	e.GET("/console/session", sessions.Session)

	g := e.Group("/console", middleware.RequireSession(deps.Session))

	dashboard := handler.NewDashboardHandler(deps.Dashboard)
	g.GET("/dashboard", dashboard.Stats)

	tenants := handler.NewTenantHandler(deps.Tenants, deps.TenantTable)
	g.GET("/tenants", tenants.List)
	g.PUT("/tenants/search", tenants.Search)
	g.POST("/tenants/table", tenants.Table)
	g.POST("/tenants", tenants.Create)
	g.PATCH("/tenants/:id", tenants.Rename)
	g.PATCH("/tenants/:id/status", tenants.SetStatus)
	g.DELETE("/tenants/:id", tenants.Delete)

	users := handler.NewUserHandler(deps.Users, deps.UserTable)
	g.GET("/users", users.List)
	g.GET("/users/all", users.All)
	g.PUT("/users/search", users.Search)
	g.POST("/users/table", users.Table)
	g.POST("/users", users.Create)
	g.PATCH("/users/:id", users.Update)

	imports := handler.NewImportHandler(deps.Imports)
	g.POST("/recipes/import", imports.Import)
	g.GET("/recipes/imports", imports.History)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func metricsMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "console"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
