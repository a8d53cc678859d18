package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bakery-saas/superadmin-console/internal/stubbackend"
)

func stubBackendCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "stub-backend",
		Short: "Run an in-memory bakery platform API for local development",
		Long: `Run an in-memory implementation of the bakery platform API on STUB_PORT.
With STUB_SEED it starts with a super-admin (` + stubbackend.SuperAdminPhone + ` / ` + stubbackend.SuperAdminPassword + `),
a shop owner and two shops.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runStub(ctx)
		},
	}
}

func runStub(ctx context.Context) error {
	b, err := loadBase(ctx)
	if err != nil {
		return err
	}

	stub, err := stubbackend.New(stubbackend.Config{
		JWTSecret: b.cfg.Stub.JWTSecret,
		Seed:      b.cfg.Stub.Seed,
	}, b.log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- stub.Start(":" + b.cfg.Stub.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return stub.Shutdown(sctx)
}
