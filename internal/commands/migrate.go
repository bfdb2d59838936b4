package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zicku/belimbing-ledger/internal/adapter/repository/postgres"
	"github.com/zicku/belimbing-ledger/internal/config"
	"github.com/zicku/belimbing-ledger/internal/logger"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			logger.Info("migrations completed successfully", nil)
			return nil
		},
	}
}
