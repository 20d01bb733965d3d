package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"goldenhand-backend/internal/services"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		roles  []string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			if cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			if ttl <= 0 {
				ttl = time.Duration(cfg.AccessTTLSeconds) * time.Second
			}
			normalized := make([]string, 0, len(roles))
			for _, role := range roles {
				if role = strings.ToUpper(strings.TrimSpace(role)); role != "" {
					normalized = append(normalized, role)
				}
			}
			tokens := services.TokenService{Secret: []byte(cfg.JWTSecret), Issuer: cfg.JWTIssuer, AccessTTL: ttl}
			signed, _, err := tokens.CreateAccessToken(userID, email, normalized)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Subject (user id) of the token")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	cmd.Flags().StringSliceVar(&roles, "roles", nil, "Comma separated roles, e.g. ADMIN,TEACHER")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to ACCESS_TTL_SECONDS)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
