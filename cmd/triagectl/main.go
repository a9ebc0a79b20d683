// Command triagectl is the operator CLI for the triage API: it mints bearer
// tokens and checks configuration using the same settings as the server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "triagectl",
		Short:         "Operator tools for the triage API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}
