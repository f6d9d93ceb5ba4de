package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/goalsetter/internal/config"
	"github.com/templui/goalsetter/internal/db"
	"github.com/templui/goalsetter/internal/logger"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back SQL schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), db.RunMigrations)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), db.MigrateDown)
		},
	})

	return cmd
}

func runMigrate(ctx context.Context, migrate func(*sql.DB, string) error) error {
	cfg := config.Load()
	logger.Init(logger.Options{Development: true})

	if cfg.UsesMongo() {
		return errors.New("mongo has no schema migrations, indexes are created on startup")
	}

	database, err := db.Init(ctx, cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return migrate(database.DB, cfg.DBDriver)
}
