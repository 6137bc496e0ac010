package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/platform/config"
	"github.com/SscSPs/firm_enquiries_app/internal/utils"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:   "token [subject]",
		Short: "Mint a bearer token for a caller identity",
		Long:  "Signs a JWT with JWT_SECRET and JWT_ISSUER. The subject is recorded as createdBy/lastUpdatedBy on writes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if expiry <= 0 {
				expiry = cfg.JWTExpiryDuration
			}
			token, err := utils.IssueAccessToken(args[0], cfg.JWTSecret, cfg.JWTIssuer, expiry)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (defaults to JWT_EXPIRY_DURATION)")
	return cmd
}
