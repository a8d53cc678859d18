package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/core/service"
)

func importCMD() *cobra.Command {
	var (
		file    string
		tenants []string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a recipe file into one or more shops",
		Long: `Import a JSON recipe file into each given shop, one shop after another.
A shop that fails is reported and the rest still run.

  console import --file recipes.json --tenant t1 --tenant t2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read recipe file: %w", err)
			}
			recipes, err := service.ParseRecipeFile(data)
			if err != nil {
				for _, msg := range service.RecipeProblems(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "  "+msg)
				}
				return err
			}
			targets := make([]domain.ImportTarget, len(tenants))
			for i, id := range tenants {
				targets[i] = domain.ImportTarget{TenantID: id}
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireSession(); err != nil {
				return err
			}

			report, err := a.importer.Import(cmd.Context(), recipes, targets)
			if report == nil {
				return err
			}
			if perr := printReport(p, report); perr != nil {
				return errors.Join(err, perr)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "recipe file (required)")
	cmd.Flags().StringArrayVarP(&tenants, "tenant", "t", nil, "target shop id, repeat for several shops (required)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

func printReport(p *printer, r *domain.ImportReport) error {
	return p.print(r, "SHOP\tIMPORTED\tSKIPPED\tERROR", func(w io.Writer) {
		for _, t := range r.Tenants {
			errMsg := t.Error
			if errMsg == "" {
				errMsg = "-"
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", t.Name, t.Imported, t.Skipped, errMsg)
		}
		fmt.Fprintf(w, "total\t%d\t%d\t\n", r.TotalImported, r.TotalSkipped)
		for _, line := range r.SkippedLog {
			fmt.Fprintf(w, "  %s\n", line)
		}
	})
}
