package cmd

import (
	"errors"
	"fmt"

	"equipment-tracker/feature/integrity/checks"
	"equipment-tracker/feature/inventory/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadDeps()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.db.AutoMigrate(models.Tables()...); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}

		report, err := checks.CheckSchema(rt.db, models.Tables()...)
		if err != nil {
			return err
		}
		if !report.Matched {
			return errors.New("schema still differs after migration, run \"integrity server\" for details")
		}
		rt.logger.Info("Schema is up to date", zap.Int("tables", len(report.Tables)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
