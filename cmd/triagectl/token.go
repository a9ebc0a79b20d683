package main

import (
	"fmt"
	"time"

	"github.com/phrazzld/triage-api/internal/config"
	"github.com/phrazzld/triage-api/internal/service/auth"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token signed with the configured secret",
		Long: `Print a bearer token for the triage API.

The token is signed with TRIAGE_AUTH_JWT_SECRET (or auth.jwt_secret in
config.yaml). Without --ttl it uses the configured token lifetime.`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}

	cmd.Flags().StringP("subject", "s", "owner", "Token subject")
	cmd.Flags().Duration("ttl", 0, "Token lifetime (e.g. 1h, 30m); 0 uses the configured lifetime")

	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	subject, err := cmd.Flags().GetString("subject")
	if err != nil {
		return err
	}
	ttl, err := cmd.Flags().GetDuration("ttl")
	if err != nil {
		return err
	}
	if ttl < 0 {
		return fmt.Errorf("--ttl must not be negative, got %s", ttl)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	if ttl == 0 {
		ttl = time.Duration(cfg.Auth.TokenLifetimeMinutes) * time.Minute
	}

	token, err := jwtService.GenerateTokenWithLifetime(cmd.Context(), subject, ttl)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
