package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func statsCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform-wide totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.requireSession(); err != nil {
				return err
			}
			if err := a.dashboard.FetchStats(cmd.Context()); err != nil {
				return err
			}
			stats := a.dashboard.View().Stats
			return p.print(stats, "TENANTS\tUSERS\tRECIPES\tTASKS", func(w io.Writer) {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", stats.TotalTenants, stats.TotalUsers, stats.TotalRecipes, stats.TotalTasks)
			})
		},
	}
}
