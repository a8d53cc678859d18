package main

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/ports"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
	"github.com/bakery-saas/superadmin-console/internal/infrastructure/backend"
	"github.com/bakery-saas/superadmin-console/internal/infrastructure/cache"
	mongodb "github.com/bakery-saas/superadmin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/bakery-saas/superadmin-console/internal/infrastructure/db/redis"
	"github.com/bakery-saas/superadmin-console/internal/infrastructure/session"
	"github.com/bakery-saas/superadmin-console/internal/pkg/config"
	"github.com/bakery-saas/superadmin-console/pkg/logger"
)

const (
	serviceName        = "superadmin-console"
	directoryCapacity  = 10_000
	directoryTTL       = time.Hour
	disconnectDeadline = 5 * time.Second
)

// base is what every command needs.
type base struct {
	cfg *config.Config
	log zerolog.Logger
}

func loadBase(ctx context.Context) (*base, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})
	return &base{cfg: cfg, log: log}, nil
}

// app is the console core wired against the configured backend and stores.
type app struct {
	*base

	state     *service.SessionState
	client    *backend.Client
	directory *cache.TenantDirectory

	auth      *service.AuthService
	tenants   *service.TenantStore
	users     *service.UserStore
	dashboard *service.DashboardStore
	importer  *service.BatchImporter

	redis *goredis.Client
	mongo *mongo.Database

	closers []func()
}

func newApp(ctx context.Context) (*app, error) {
	b, err := loadBase(ctx)
	if err != nil {
		return nil, err
	}
	a := &app{base: b}

	repo, err := a.sessionRepository(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	a.state = service.NewSessionState(repo, logger.Component("session"))
	if err := a.state.Restore(ctx); err != nil {
		a.log.Warn().Err(err).Msg("could not restore session, starting logged out")
	}

	a.client = backend.NewClient(a.cfg.Backend.URL, a.state,
		backend.WithTimeout(a.cfg.Backend.Timeout),
		backend.WithLogger(logger.Component("backend")),
	)

	a.directory, err = cache.NewTenantDirectory(directoryCapacity, directoryTTL)
	if err != nil {
		a.close()
		return nil, err
	}
	a.closers = append(a.closers, a.directory.Close)

	history := a.importHistory(ctx)

	a.auth = service.NewAuthService(a.client, a.state, a.log)
	a.tenants = service.NewTenantStore(a.client, a.directory, a.log)
	a.users = service.NewUserStore(a.client, a.log)
	a.dashboard = service.NewDashboardStore(a.client, a.log)
	a.importer = service.NewBatchImporter(service.NewRecipeStore(a.client, a.log), a.directory, history, a.log)
	return a, nil
}

func (a *app) sessionRepository(ctx context.Context) (ports.SessionRepository, error) {
	if a.cfg.Session.Store == config.SessionStoreRedis {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		return redisdb.NewSessionStore(rdb, a.cfg.Session.RedisPrefix), nil
	}

	path := a.cfg.Session.File
	if path == "" {
		p, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return session.NewFileStore(path), nil
}

// importHistory connects Mongo when MONGO_URI is set. It returns a nil
// interface otherwise, or when Mongo is unreachable, so the importer skips
// recording.
func (a *app) importHistory(ctx context.Context) ports.ImportHistoryRepository {
	if !a.cfg.HistoryEnabled() {
		return nil
	}
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: a.cfg.Mongo.URI, Database: a.cfg.Mongo.Database})
	if err != nil {
		a.log.Warn().Err(err).Msg("import history disabled")
		return nil
	}
	a.mongo = db
	a.closers = append(a.closers, func() {
		dctx, cancel := context.WithTimeout(context.Background(), disconnectDeadline)
		defer cancel()
		_ = client.Disconnect(dctx)
	})

	repo := mongodb.NewImportHistoryRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		a.log.Warn().Err(err).Msg("could not create import history indexes")
	}
	return repo
}

// requireSession fails fast for commands that need a logged-in console.
func (a *app) requireSession() error {
	if !a.state.Authenticated() {
		return fmt.Errorf("%w: run \"console login\" first", domain.ErrNotAuthenticated)
	}
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
