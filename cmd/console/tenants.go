package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

func tenantsCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant"},
		Short:   "Manage shops",
	}
	cmd.AddCommand(
		tenantsListCMD(),
		tenantsCreateCMD(),
		tenantsRenameCMD(),
		tenantsStatusCMD(),
		tenantsDeleteCMD(),
	)
	return cmd
}

func tenantsListCMD() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			q, err := lf.query()
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

			res, err := a.client.ListTenants(cmd.Context(), q)
			if err != nil {
				return err
			}
			a.directory.Remember(res.Items)

			return p.print(res, "ID\tNAME\tSTATUS\tOWNER\tRECIPES\tCREATED", func(w io.Writer) {
				for _, t := range res.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
						t.ID, t.Name, t.Status, deref(t.OwnerName), t.RecipeCount, t.CreatedAt.Local().Format("2006-01-02"))
				}
				fmt.Fprintf(w, "page %d, %d of %d shown\n", res.Page, len(res.Items), res.Total)
			})
		},
	}
	lf.register(cmd, "name, createdAt, recipeCount, status")
	return cmd
}

func tenantsCreateCMD() *cobra.Command {
	var in domain.CreateTenantInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shop owned by an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.Struct(in); err != nil {
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

			t, err := a.client.CreateTenant(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created shop %s (%s)\n", t.Name, t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "shop name (required)")
	cmd.Flags().StringVar(&in.OwnerID, "owner", "", "owner user id (required)")
	return cmd
}

func tenantsRenameCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "rename TENANT_ID NAME",
		Short: "Rename a shop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.UpdateTenantInput{Name: &args[1]}
			if err := validation.Struct(in); err != nil {
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

			t, err := a.client.UpdateTenant(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed shop %s to %s\n", t.ID, t.Name)
			return nil
		},
	}
}

func tenantsStatusCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "status TENANT_ID ACTIVE|INACTIVE",
		Short: "Activate or deactivate a shop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.TenantStatus(strings.ToUpper(args[1]))
			if !status.Valid() {
				return fmt.Errorf("status must be %s or %s", domain.TenantActive, domain.TenantInactive)
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireSession(); err != nil {
				return err
			}

			t, err := a.client.SetTenantStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shop %s is %s\n", t.ID, t.Status)
			return nil
		},
	}
}

func tenantsDeleteCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TENANT_ID",
		Short: "Delete a shop permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.requireSession(); err != nil {
				return err
			}

			if err := a.client.DeleteTenant(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted shop %s\n", args[0])
			return nil
		},
	}
}
