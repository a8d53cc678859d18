package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bakery-saas/superadmin-console/internal/api"
	"github.com/bakery-saas/superadmin-console/internal/core/pagination"
)

const shutdownTimeout = 10 * time.Second

func serveCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the console server",
		Long: `Run the console server on PORT. It holds the session and the state
of the dashboard, tenants and users screens for the browser view.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	debounce := pagination.WithDebounce(a.cfg.SearchDebounce)
	tenantTable := pagination.New(ctx, a.tenants.FetchTenants, a.tenants, debounce)
	userTable := pagination.New(ctx, a.users.FetchUsers, a.users, debounce)
	defer tenantTable.Close()
	defer userTable.Close()

	e := api.NewRouter(api.Deps{
		Auth:        a.auth,
		Session:     a.state,
		Dashboard:   a.dashboard,
		Tenants:     a.tenants,
		TenantTable: tenantTable,
		Users:       a.users,
		UserTable:   userTable,
		Imports:     a.importer,
		Mongo:       a.mongo,
		Redis:       a.redis,
	}, a.log)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().
			Str("port", a.cfg.Port).
			Str("env", a.cfg.Env).
			Str("backend", a.cfg.Backend.URL).
			Msg("console server listening")
		if err := e.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down console server")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
