package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"equipment-tracker/core/cache"
	"equipment-tracker/core/pin"
	"equipment-tracker/core/server"
	"equipment-tracker/feature/inventory"
	"equipment-tracker/feature/inventory/engine"
	"equipment-tracker/feature/inventory/models"

	"github.com/spf13/cobra"
)

var (
	equipmentView   string
	equipmentSearch string
)

// equipmentCmd prints the console view of one item, or lists a view.
var equipmentCmd = &cobra.Command{
	Use:   "equipment [id]",
	Short: "Show an equipment item with its active checkouts, or list items",
	Long: `With an id, prints the item's counters and its active checkouts as JSON.
Without one, lists the items of --view (active, reserved, archived).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadDeps()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		eng := engine.New(rt.db, pin.NewHasher(rt.cfg.Pin.Secret), cache.NewMemoryStore(), rt.logger)
		svc := inventory.NewService(rt.db, eng, rt.logger)
		ctx := cmd.Context()

		var out any
		if len(args) == 0 {
			view, ok := models.ParseView(equipmentView)
			if !ok {
				return fmt.Errorf("unknown view %q", equipmentView)
			}
			items, err := svc.ListEquipment(ctx, server.RoleMaster, view, models.ListFilter{Search: equipmentSearch})
			if err != nil {
				return err
			}
			out = items
		} else {
			detail, err := svc.EquipmentDetail(ctx, server.RoleMaster, args[0])
			if err != nil {
				return err
			}
			out = detail
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	equipmentCmd.Flags().StringVar(&equipmentView, "view", "active", "Listing view: active, reserved or archived")
	equipmentCmd.Flags().StringVar(&equipmentSearch, "search", "", "Case-insensitive name filter")
	RootCmd.AddCommand(equipmentCmd)
}
