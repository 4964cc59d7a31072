package ledger

import (
	"context"
	"testing"
	"time"

	"equipment-tracker/core/database"
	"equipment-tracker/core/reconcile"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Equipment{}, &models.CheckoutRecord{}))
	return db
}

func createItem(t *testing.T, db *gorm.DB, name string, counts models.ConditionCounts) *models.Equipment {
	t.Helper()
	e, err := store.NewEquipmentStore(db).Create(context.Background(), &models.CreateEquipmentRequest{
		Name:            name,
		Category:        models.CategoryAudio,
		TotalQuantity:   counts.Sum(),
		ConditionCounts: counts,
	})
	require.NoError(t, err)
	return e
}

func lend(t *testing.T, db *gorm.DB, equipmentID string, qty, returned int) *models.CheckoutRecord {
	t.Helper()
	r := &models.CheckoutRecord{
		EquipmentID:             equipmentID,
		BorrowerName:            "Jane Doe",
		TeamName:                "Youth",
		PinHash:                 "digest",
		Quantity:                qty,
		QuantityReturned:        returned,
		CheckoutConditionCounts: models.ConditionCounts{models.ConditionGood: qty},
		CheckoutDate:            time.Now().UTC(),
	}
	require.NoError(t, store.NewLedger(db).Append(context.Background(), r))
	return r
}

func fields(findings []reconcile.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Field)
	}
	return out
}

func TestCompare(t *testing.T) {
	a := NewAdapter(nil)

	healthy := &models.Equipment{
		TotalQuantity:     5,
		QuantityAvailable: 3,
		ConditionCounts:   models.ConditionCounts{models.ConditionGood: 3},
		Condition:         models.ConditionGood,
		IsAvailable:       true,
	}
	assert.Empty(t, a.Compare(healthy, &State{Outstanding: 2}))

	drifted := &models.Equipment{
		TotalQuantity:     5,
		QuantityAvailable: 5,
		QuantityReserved:  1,
		ConditionCounts:   models.ConditionCounts{models.ConditionFair: 5},
		Condition:         models.ConditionGood,
		IsAvailable:       true,
	}
	findings := a.Compare(drifted, &State{Outstanding: 2, OverReturned: []string{"r1"}})
	assert.Equal(t, []string{"condition_counts", "quantity_available", "condition", "over_returned_checkouts"}, fields(findings))
	assert.Equal(t, "quantity_available: recorded=5 expected=2", findings[1].String())
	assert.False(t, findings[0].Repairable)
	assert.True(t, findings[1].Repairable)

	empty := &models.Equipment{
		TotalQuantity:     2,
		QuantityAvailable: 1,
		ConditionCounts:   models.ConditionCounts{},
		Condition:         models.ConditionGood,
		IsAvailable:       true,
	}
	findings = a.Compare(empty, &State{Outstanding: 2})
	assert.Equal(t, []string{"quantity_available", "is_available"}, fields(findings))
}

func TestExpected_ClampsAtZero(t *testing.T) {
	e := &models.Equipment{TotalQuantity: 2, QuantityAvailable: 2, QuantityReserved: 1}
	available, isAvailable, _ := Expected(e, &State{Outstanding: 3})
	assert.Zero(t, available)
	assert.False(t, isAvailable)
}

func TestReconcile_PlanAndRepair(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	ok := createItem(t, db, "Cable", models.ConditionCounts{models.ConditionGood: 2})
	mic := createItem(t, db, "Mic", models.ConditionCounts{models.ConditionGood: 4})
	lend(t, db, mic.ID, 2, 0)
	// The ledger records 2 units out but the counters were never decremented.
	require.NoError(t, db.Model(&models.Equipment{}).Where("id = ?", mic.ID).
		Update("condition_counts", models.ConditionCounts{models.ConditionGood: 2}).Error)

	orphanID := uuid.NewString()
	lend(t, db, orphanID, 1, 1)

	spec := &reconcile.Spec{Adapter: NewAdapter(db)}
	opts := reconcile.ReconcileOptions{DoRepair: true, DoPurge: true}
	plan, err := reconcile.ReconcileWithPlan(ctx, spec, db, opts)
	require.NoError(t, err)

	assert.Equal(t, 3, plan.Summary.TotalItems)
	assert.Equal(t, 1, plan.Summary.Drifted)
	assert.Equal(t, 1, plan.Summary.Orphans)
	assert.Equal(t, 1, plan.Summary.RepairActions)
	assert.Equal(t, 1, plan.Summary.PurgeActions)

	byID := map[string]reconcile.ReconcileResult{}
	for _, r := range plan.Results {
		byID[r.ID] = r
	}
	assert.False(t, byID[ok.ID].Drifted())
	assert.Equal(t, []string{"quantity_available"}, fields(byID[mic.ID].Findings))
	assert.Equal(t, "2", byID[mic.ID].Metadata["outstanding"])
	assert.Equal(t, "(deleted equipment)", byID[orphanID].Name)

	executed, err := reconcile.ApplyPlan(ctx, spec, plan, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, executed, "unconfirmed plans are not applied")

	opts.Confirmed = true
	executed, err = reconcile.ApplyPlan(ctx, spec, plan, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, executed)

	repaired, err := store.NewEquipmentStore(db).Get(ctx, mic.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, repaired.QuantityAvailable)

	var orphans int64
	require.NoError(t, db.Model(&models.CheckoutRecord{}).Where("equipment_id = ?", orphanID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	plan, err = reconcile.ReconcileWithPlan(ctx, spec, db, opts)
	require.NoError(t, err)
	assert.Zero(t, plan.Summary.Drifted)
	assert.Zero(t, plan.Summary.Orphans)
}

func TestQueryOne(t *testing.T) {
	db := setupDB(t)
	a := NewAdapter(db)
	mic := createItem(t, db, "Mic", models.ConditionCounts{models.ConditionGood: 3})
	lend(t, db, mic.ID, 2, 1)

	recorded, derived, err := a.QueryOne(context.Background(), db, mic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mic", recorded.(*models.Equipment).Name)
	assert.Equal(t, 1, derived.(*State).Outstanding)
	assert.Equal(t, 1, derived.(*State).ActiveCheckouts)

	recorded, derived, err = a.QueryOne(context.Background(), db, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, recorded)
	assert.Nil(t, derived)
}
