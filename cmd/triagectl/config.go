package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/phrazzld/triage-api/internal/config"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Load and validate configuration, then print the effective values",
		Long: `Load configuration the way the server does (defaults, config.yaml,
then TRIAGE_* environment variables), validate it, and print the effective
values. Secrets are reported as set or unset, never printed.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "server.port\t%d\n", cfg.Server.Port)
	fmt.Fprintf(tw, "server.log_level\t%s\n", cfg.Server.LogLevel)
	fmt.Fprintf(tw, "auth.jwt_secret\t%s\n", secretStatus(cfg.Auth.JWTSecret))
	fmt.Fprintf(tw, "auth.token_lifetime_minutes\t%d\n", cfg.Auth.TokenLifetimeMinutes)
	fmt.Fprintf(tw, "triage.default_mode\t%s\n", cfg.Triage.DefaultMode)
	fmt.Fprintf(tw, "triage.chaos_seed\t%s\n", seedStatus(cfg.Triage.ChaosSeed))
	return tw.Flush()
}

func secretStatus(s string) string {
	if s == "" {
		return "unset"
	}
	return fmt.Sprintf("set (%d chars)", len(s))
}

func seedStatus(seed uint64) string {
	if seed == 0 {
		return "0 (unseeded)"
	}
	return fmt.Sprintf("%d", seed)
}
