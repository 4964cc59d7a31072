package ledger

import (
	"context"
	"fmt"
	"strconv"

	"equipment-tracker/core/reconcile"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"gorm.io/gorm"
)

// State is what the checkout ledger implies about one equipment item.
type State struct {
	EquipmentID string
	// Outstanding is the unreturned balance of active checkouts.
	Outstanding int
	// ActiveCheckouts counts records without a return date.
	ActiveCheckouts int
	// OverReturned lists records whose returned quantity exceeds the borrowed one.
	OverReturned []string
}

// Adapter audits equipment counters against the checkout ledger.
type Adapter struct {
	db *gorm.DB
}

// NewAdapter creates a ledger adapter. db is used by the mutations.
func NewAdapter(db *gorm.DB) *Adapter {
	return &Adapter{db: db}
}

func (a *Adapter) Name() string {
	return "ledger"
}

// LoadRecorded indexes every equipment row by id.
func (a *Adapter) LoadRecorded(ctx context.Context, db *gorm.DB) (map[string]reconcile.Item, error) {
	items, err := store.NewEquipmentStore(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]reconcile.Item, len(items))
	for i := range items {
		index[items[i].ID] = &items[i]
	}
	return index, nil
}

// LoadDerived folds every checkout record into a State per equipment id.
func (a *Adapter) LoadDerived(ctx context.Context, db *gorm.DB) (map[string]reconcile.Item, error) {
	records, err := store.NewLedger(db).All(ctx)
	if err != nil {
		return nil, err
	}
	states := fold(records)
	index := make(map[string]reconcile.Item, len(states))
	for id, s := range states {
		index[id] = s
	}
	return index, nil
}

// QueryOne loads one item and its ledger rows.
func (a *Adapter) QueryOne(ctx context.Context, db *gorm.DB, key string) (reconcile.Item, reconcile.Item, error) {
	var recorded reconcile.Item
	var e models.Equipment
	err := db.WithContext(ctx).Where("id = ?", key).Limit(1).Find(&e).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load equipment %s: %w", key, err)
	}
	if e.ID != "" {
		recorded = &e
	}

	var records []models.CheckoutRecord
	if err := db.WithContext(ctx).Where("equipment_id = ?", key).Find(&records).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load checkouts of %s: %w", key, err)
	}
	var derived reconcile.Item
	if s, ok := fold(records)[key]; ok {
		derived = s
	}
	return recorded, derived, nil
}

func fold(records []models.CheckoutRecord) map[string]*State {
	states := make(map[string]*State)
	for i := range records {
		r := &records[i]
		s, ok := states[r.EquipmentID]
		if !ok {
			s = &State{EquipmentID: r.EquipmentID}
			states[r.EquipmentID] = s
		}
		if r.QuantityReturned > r.Quantity {
			s.OverReturned = append(s.OverReturned, r.ID)
		}
		if r.IsActive() {
			s.ActiveCheckouts++
			s.Outstanding += r.Remaining()
		}
	}
	return states
}

func (a *Adapter) ResolveName(recorded, derived reconcile.Item) string {
	if e, ok := recorded.(*models.Equipment); ok {
		return e.Name
	}
	return "(deleted equipment)"
}

func stateOf(derived reconcile.Item) *State {
	if s, ok := derived.(*State); ok {
		return s
	}
	return &State{}
}

// Expected returns the counters the ledger implies for e: availability
// clamped to the loanable ceiling, with the flags derived from it.
func Expected(e *models.Equipment, s *State) (available int, isAvailable bool, condition models.Condition) {
	available = e.QuantityAvailable
	if ceiling := e.LoanableCeiling() - s.Outstanding; available > ceiling {
		available = ceiling
	}
	if available < 0 {
		available = 0
	}
	return available, available > 0, e.ConditionCounts.Dominant()
}

// Compare reports drift between an item row and its ledger.
func (a *Adapter) Compare(recorded, derived reconcile.Item) []reconcile.Finding {
	e := recorded.(*models.Equipment)
	s := stateOf(derived)
	var findings []reconcile.Finding

	if sum, want := e.ConditionCounts.Sum(), e.TotalQuantity-s.Outstanding; sum != want {
		findings = append(findings, reconcile.Finding{
			Field:    "condition_counts",
			Recorded: strconv.Itoa(sum),
			Expected: strconv.Itoa(want),
		})
	}

	available, isAvailable, condition := Expected(e, s)
	if e.QuantityAvailable != available {
		findings = append(findings, reconcile.Finding{
			Field:      "quantity_available",
			Recorded:   strconv.Itoa(e.QuantityAvailable),
			Expected:   strconv.Itoa(available),
			Repairable: true,
		})
	}
	if e.IsAvailable != isAvailable {
		findings = append(findings, reconcile.Finding{
			Field:      "is_available",
			Recorded:   strconv.FormatBool(e.IsAvailable),
			Expected:   strconv.FormatBool(isAvailable),
			Repairable: true,
		})
	}
	if e.Condition != condition {
		findings = append(findings, reconcile.Finding{
			Field:      "condition",
			Recorded:   string(e.Condition),
			Expected:   string(condition),
			Repairable: true,
		})
	}
	if n := len(s.OverReturned); n > 0 {
		findings = append(findings, reconcile.Finding{
			Field:    "over_returned_checkouts",
			Recorded: strconv.Itoa(n),
			Expected: "0",
		})
	}
	return findings
}

func (a *Adapter) Metadata(recorded, derived reconcile.Item) map[string]string {
	s := stateOf(derived)
	meta := map[string]string{
		"outstanding":      strconv.Itoa(s.Outstanding),
		"active_checkouts": strconv.Itoa(s.ActiveCheckouts),
	}
	if e, ok := recorded.(*models.Equipment); ok {
		meta["category"] = string(e.Category)
		meta["total_quantity"] = strconv.Itoa(e.TotalQuantity)
	}
	return meta
}
