package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

func loginCMD() *cobra.Command {
	var phone, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a super-admin",
		Long: `Log in with a super-admin phone number and password. The password is
prompted for when --password is not given. Accounts without the
SUPER_ADMIN role are refused.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(phone) == "" {
				return fmt.Errorf("--phone is required")
			}
			if password == "" {
				p, err := promptPassword("Password: ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = p
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			sess, err := a.auth.Login(cmd.Context(), phone, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", displayName(sess.CurrentUser), sess.CurrentUser.Identifier)
			return nil
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "login phone number (required)")
	cmd.Flags().StringVar(&password, "password", "", "password, prompted for when empty")
	return cmd
}

// promptPassword reads a password from the terminal without echoing.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func logoutCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the console session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			a.auth.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in operator",
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
			sess := a.auth.Current(cmd.Context())
			if !sess.Authenticated() {
				return a.requireSession()
			}
			return p.print(sess.CurrentUser, "ID\tPHONE\tNAME\tROLE\tEXPIRES", func(w io.Writer) {
				expires := "-"
				if !sess.ExpiresAt.IsZero() {
					expires = sess.ExpiresAt.Local().Format("2006-01-02 15:04")
				}
				u := sess.CurrentUser
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Identifier, displayName(u), u.Role, expires)
			})
		},
	}
}

func displayName(u *domain.CurrentUser) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Identifier
}
