package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"equipment-tracker/core/server"
	"equipment-tracker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag    bool
	jsonOutput bool
)

// integrityCmd runs the schema and storage checks.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the export bucket",
	Long:  `Checks that the database exposes every mapped column and that the export bucket exists. The ledger itself is checked by "audit".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and optionally create the export bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(serverCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
	integrityCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Save the detailed report as JSON")
}

func runIntegrityChecks(cmd *cobra.Command, runServer, runStorage bool) error {
	ctx := cmd.Context()
	startTime := time.Now()

	rt, err := loadDeps()
	if err != nil {
		return err
	}
	defer rt.logger.Sync()
	logg := rt.logger

	client, err := rt.storage()
	if err != nil {
		return err
	}
	svc := integrity.NewService(rt.db, client, rt.cfg.Storage, logg)
	report := make(map[string]any)

	if runServer {
		logg.Info("Checking server schema integrity...")
		schema, err := svc.CheckSchema(server.RoleMaster)
		if err != nil {
			return fmt.Errorf("server schema check failed: %w", err)
		}
		report["server"] = schema

		if schema.Matched {
			logg.Info("Server schema matches expected definition.")
		} else {
			logg.Warn("Server schema mismatches found")
			for table, tbl := range schema.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range schema.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runStorage {
		logg.Info("Checking export bucket...", zap.String("bucket", rt.cfg.Storage.Bucket))
		bucket, err := svc.CheckStorage(ctx, server.RoleMaster, fixFlag)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}
		report["storage"] = bucket

		switch bucket.Status {
		case "missing":
			logg.Warn("Export bucket is missing. Run \"integrity storage --fix\" to create it.")
		case "created":
			logg.Info("Export bucket created.")
		default:
			logg.Info("Export bucket is present.", zap.Int("exports", bucket.Exports))
		}
	}

	if jsonOutput {
		filename := fmt.Sprintf("integrity_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		logg.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	logg.Info("Integrity checks completed", zap.Duration("execution_time", time.Since(startTime)))
	return nil
}
