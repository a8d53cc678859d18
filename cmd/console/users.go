package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
	"github.com/bakery-saas/superadmin-console/internal/pkg/validation"
)

func usersCMD() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage platform accounts",
	}
	cmd.AddCommand(usersListCMD(), usersCreateCMD(), usersUpdateCMD())
	return cmd
}

func usersListCMD() *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users with their shop memberships",
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

			res, err := a.client.ListUsers(cmd.Context(), q)
			if err != nil {
				return err
			}
			return p.print(res, "ID\tNAME\tPHONE\tSTATUS\tSHOPS", func(w io.Writer) {
				for _, u := range res.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, deref(u.Name), u.Phone, u.Status, memberships(u.Memberships))
				}
				fmt.Fprintf(w, "page %d, %d of %d shown\n", res.Page, len(res.Items), res.Total)
			})
		},
	}
	lf.register(cmd, "name, phone, createdAt, status")
	return cmd
}

func memberships(ms []domain.Membership) string {
	if len(ms) == 0 {
		return "-"
	}
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = fmt.Sprintf("%s (%s)", m.TenantName, m.Role)
	}
	return strings.Join(parts, ", ")
}

func usersCreateCMD() *cobra.Command {
	var in domain.CreateUserInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a standalone account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				p, err := promptPassword("Password for the new user: ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				in.Password = p
			}
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

			u, err := a.client.CreateUser(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", u.Phone, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "login phone number (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password, prompted for when empty")
	return cmd
}

func usersUpdateCMD() *cobra.Command {
	var name, password, status string
	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Change a user's name, password or status",
		Long: `Change a user's name, password or status. Only the flags given are sent;
everything else stays as it is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.UpdateUserInput
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = &name
			}
			if flags.Changed("password") {
				in.Password = &password
			}
			if flags.Changed("status") {
				s := domain.UserStatus(strings.ToUpper(status))
				in.Status = &s
			}
			if in.Name == nil && in.Password == nil && in.Status == nil {
				return fmt.Errorf("nothing to update, pass --name, --password or --status")
			}
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

			u, err := a.client.UpdateUser(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s (%s)\n", u.Phone, u.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.Flags().StringVar(&status, "status", "", "ACTIVE, INACTIVE or PENDING")
	return cmd
}
