// Package store persists equipment items and checkout records with GORM.
//
// EquipmentStore owns the equipment_items table and Ledger owns
// checkout_records. Both accept a transaction through WithTx so the
// reconciliation engine can mutate an item and its ledger rows atomically.
// Row locks use SELECT ... FOR UPDATE on PostgreSQL and MySQL; SQLite ignores
// the locking clause and serializes writers on its own.
//
// # Usage
//
//	items := store.NewEquipmentStore(db)
//	item, err := items.Create(ctx, &models.CreateEquipmentRequest{
//		Name:            "Shure SM58",
//		Category:        models.CategoryAudio,
//		TotalQuantity:   3,
//		ConditionCounts: models.ConditionCounts{models.ConditionGood: 3},
//	})
package store
