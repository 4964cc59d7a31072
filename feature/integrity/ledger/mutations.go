package ledger

import (
	"context"
	"fmt"

	"equipment-tracker/core/reconcile"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"gorm.io/gorm"
)

// Repair rewrites the repairable counters of one item.
func (a *Adapter) Repair(ctx context.Context, key string, _ reconcile.Item) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repair(ctx, tx, key)
	})
}

// RepairBatch repairs every planned item in a single transaction.
func (a *Adapter) RepairBatch(ctx context.Context, actions []reconcile.Action) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, act := range actions {
			if err := repair(ctx, tx, act.Key); err != nil {
				return err
			}
		}
		return nil
	})
}

// repair recomputes the outstanding balance under the item's row lock.
func repair(ctx context.Context, tx *gorm.DB, key string) error {
	items := store.NewEquipmentStore(tx)
	e, err := items.GetForUpdate(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to lock equipment %s: %w", key, err)
	}
	outstanding, err := store.NewLedger(tx).Outstanding(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to sum checkouts of %s: %w", key, err)
	}
	e.QuantityAvailable, _, _ = Expected(e, &State{Outstanding: outstanding})
	return items.Save(ctx, e)
}

// PurgeOrphan deletes the checkout rows of an equipment id that no longer exists.
func (a *Adapter) PurgeOrphan(ctx context.Context, key string) error {
	res := a.db.WithContext(ctx).Where("equipment_id = ?", key).Delete(&models.CheckoutRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to purge checkouts of %s: %w", key, res.Error)
	}
	return nil
}
