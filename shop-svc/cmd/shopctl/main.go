// Command shopctl prepares the shop database: schema migration and seed data.
package main

import (
	"fmt"
	"os"

	"alianza-shop/auth"
	"alianza-shop/config"
	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "shopctl",
		Short:        "Maintenance commands for the shop database",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			db := config.MustInitPostgres(cfg, logger)
			defer db.Close()

			if err := storage.EnsureSchema(db); err != nil {
				return err
			}
			logger.Info("schema is up to date", zap.Int("statements", len(storage.Statements)))
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load default categories, delivery zones, settings and the admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := adminFromFlags(username, email, password)
			if err != nil {
				return err
			}

			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			db := config.MustInitPostgres(cfg, logger)
			defer db.Close()

			if err := storage.EnsureSchema(db); err != nil {
				return err
			}
			if err := storage.Seed(db, admin); err != nil {
				return err
			}
			logger.Info("seed completed", zap.String("admin", admin.Username))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "admin-user", "admin", "admin username")
	cmd.Flags().StringVar(&email, "admin-email", "", "admin email")
	cmd.Flags().StringVar(&password, "admin-password", os.Getenv("ADMIN_PASSWORD"), "admin password (defaults to $ADMIN_PASSWORD)")
	return cmd
}

// adminFromFlags hashes the password. An empty username skips the admin account.
func adminFromFlags(username, email, password string) (domain.AdminUser, error) {
	if username == "" {
		return domain.AdminUser{}, nil
	}
	if len(password) < 8 {
		return domain.AdminUser{}, fmt.Errorf("admin password must have at least 8 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("hash admin password: %w", err)
	}
	return domain.AdminUser{Username: username, Email: email, PasswordHash: hash}, nil
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, logger, nil
}
