package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nephrocare/dialyse_backend/config"
	entuser "github.com/nephrocare/dialyse_backend/internal/repo/user"
	"github.com/nephrocare/dialyse_backend/pkg/authorize"
	"github.com/nephrocare/dialyse_backend/pkg/database"
	"github.com/nephrocare/dialyse_backend/pkg/util/password"
)

// NewSeedAdminCommand creates the bootstrap admin account if it does not
// exist yet and binds it to the admin role. Safe to run repeatedly.
func NewSeedAdminCommand() *cobra.Command {
	var adminPassword string

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the bootstrap admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if adminPassword == "" {
				adminPassword = password.Generate(16)
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			exists, err := client.User.Query().
				Where(entuser.Username("admin"), entuser.DeletedAtIsNil()).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check admin account: %w", err)
			}
			if exists {
				fmt.Println("Admin account already exists, nothing to do.")
				return nil
			}

			hash, err := password.Hash(adminPassword)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			u, err := client.User.Create().
				SetUsername("admin").
				SetPasswordHash(hash).
				SetRole(entuser.RoleAdmin).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create admin account: %w", err)
			}

			dsn := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}
			if err := authorize.AssignUserRole(ctx, auth, u.ID.String(), string(u.Role)); err != nil {
				return fmt.Errorf("failed to assign admin role: %w", err)
			}

			fmt.Printf("Admin account created.\n  username: admin\n  password: %s\n", adminPassword)
			fmt.Println("Change this password after the first sign-in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&adminPassword, "password", "", "Initial admin password (random if omitted)")

	return cmd
}
