package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter supplies the model-specific halves of a reconciliation: how to
// load both sources and how to compare one entity across them.
type Adapter interface {
	// Name returns the unique adapter name.
	Name() string

	// LoadRecorded loads the authoritative rows indexed by entity key.
	LoadRecorded(ctx context.Context, db *gorm.DB) (map[string]Item, error)

	// LoadDerived loads the state implied by the secondary source, indexed by
	// the same keys.
	LoadDerived(ctx context.Context, db *gorm.DB) (map[string]Item, error)

	// QueryOne loads both sides of a single entity. Either may be nil.
	QueryOne(ctx context.Context, db *gorm.DB, key string) (recorded, derived Item, err error)

	// ResolveName returns a display name. Either item may be nil.
	ResolveName(recorded, derived Item) string

	// Compare lists discrepancies for a recorded entity. derived is nil when the
	// secondary source has nothing for it.
	Compare(recorded, derived Item) []Finding

	// Metadata returns extra fields included in the result.
	Metadata(recorded, derived Item) map[string]string
}

// Mutator is implemented by adapters that can apply planned actions.
type Mutator interface {
	Repair(ctx context.Context, key string, derived Item) error
	PurgeOrphan(ctx context.Context, key string) error
}

// RepairBatcher is an optional Mutator extension applying all repairs at once.
type RepairBatcher interface {
	RepairBatch(ctx context.Context, actions []Action) error
}
