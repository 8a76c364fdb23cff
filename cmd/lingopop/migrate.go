package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lingopop/internal/database"
	"github.com/at-ishikawa/lingopop/schemas"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the notebook tables in the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.ApplyMigrations(cmd.Context(), db, schemas.Migrations); err != nil {
				return fmt.Errorf("database.ApplyMigrations() > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
	return cmd
}
