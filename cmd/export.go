package cmd

import (
	"equipment-tracker/core/server"
	"equipment-tracker/feature/reports"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportSearch string

// exportCmd uploads a checkout history snapshot to object storage.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the checkout history to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadDeps()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		client, err := rt.storage()
		if err != nil {
			return err
		}

		svc := reports.NewService(rt.db, client, rt.cfg.Storage, rt.logger)
		info, err := svc.ExportHistory(cmd.Context(), server.RoleMaster, exportSearch)
		if err != nil {
			return err
		}
		rt.logger.Info("Export stored",
			zap.String("bucket", rt.cfg.Storage.Bucket),
			zap.String("key", info.Key),
			zap.Int("records", info.Records),
			zap.Int64("bytes", info.Size),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "Only export checkouts matching this filter")
	RootCmd.AddCommand(exportCmd)
}
