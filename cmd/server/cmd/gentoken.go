package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
)

var (
	gentokenEmail string
	gentokenRole  string
)

// gentokenCmd mints a session token against the configured JWT secret, for
// driving the API with curl during development.
var gentokenCmd = &cobra.Command{
	Use:   "gentoken",
	Short: "Generate a JWT for testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		if !auth.ValidRole(gentokenRole) {
			return fmt.Errorf("unknown role %q (want ADMIN, STAFF, or VIEWER)", gentokenRole)
		}

		manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.Issuer)
		token, err := manager.Generate("gentoken", gentokenEmail, auth.NormalizeRole(gentokenRole))
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, token)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "curl -H 'Authorization: Bearer %s' http://localhost:%d/api/v1/orders\n", token, cfg.Server.Port)
		return nil
	},
}

func init() {
	gentokenCmd.Flags().StringVar(&gentokenEmail, "email", "admin@gmail.com", "email claim")
	gentokenCmd.Flags().StringVar(&gentokenRole, "role", "ADMIN", "role claim (ADMIN, STAFF, VIEWER)")
}
