// Command console is the bakery platform's super-admin console: the
// console server, the platform stub and a command line over the same core.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const outputFlagName = "output"

func main() {
	rootCmd := &cobra.Command{
		Use:   "console",
		Short: "Bakery platform super-admin console",
		Long: `Super-admin console for the bakery platform.
Run "console serve" for the console server or use the subcommands directly.
Settings come from the environment (BACKEND_URL, SESSION_STORE, ...).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP(outputFlagName, "o", outputTable,
		"output format of read commands: [ table | json ]")

	rootCmd.AddCommand(
		serveCMD(),
		stubBackendCMD(),
		loginCMD(),
		logoutCMD(),
		whoamiCMD(),
		statsCMD(),
		tenantsCMD(),
		usersCMD(),
		importCMD(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
