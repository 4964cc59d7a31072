package reconcile

import (
	"fmt"
	"time"
)

// Item is an adapter-defined entity from one of the two sources.
type Item any

// Finding is one detected discrepancy for an entity.
type Finding struct {
	// Field names the checked property, e.g. "quantity_available".
	Field string `json:"field"`
	// Recorded is the stored value.
	Recorded string `json:"recorded"`
	// Expected is the value implied by the other source.
	Expected string `json:"expected"`
	// Repairable is true when a Mutator can fix the stored value.
	Repairable bool `json:"repairable"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: recorded=%s expected=%s", f.Field, f.Recorded, f.Expected)
}

// ReconcileResult is the reconciliation output for a single entity.
type ReconcileResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// RecordedPresent is true when the entity exists in the authoritative table.
	RecordedPresent bool `json:"recorded_present"`
	// DerivedPresent is true when the secondary source references the entity.
	DerivedPresent bool `json:"derived_present"`

	Findings []Finding         `json:"findings"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Drifted reports whether the result has any finding.
func (r ReconcileResult) Drifted() bool { return len(r.Findings) > 0 }

// Orphan reports whether only the derived source knows the entity.
func (r ReconcileResult) Orphan() bool { return r.DerivedPresent && !r.RecordedPresent }

// Spec bundles an adapter with its cache settings.
type Spec struct {
	Adapter Adapter
	// CacheTTL is the lifetime of cached indices; zero disables caching.
	CacheTTL time.Duration
}

// CacheKey isolates caches of different adapters.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name()
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionRepair rewrites repairable recorded fields from the derived state.
	ActionRepair ActionType = "repair"
	// ActionPurgeOrphan removes derived rows whose entity no longer exists.
	ActionPurgeOrphan ActionType = "purge_orphan"
)

// Action is a planned mutation.
type Action struct {
	Type   ActionType `json:"type"`
	Key    string     `json:"key"`
	Reason string     `json:"reason"`

	// Derived is the source state for repairs.
	Derived Item `json:"-"`
}

// ReconcilePlan contains reconciliation results and planned actions.
type ReconcilePlan struct {
	Results []ReconcileResult `json:"results"`
	Actions []Action          `json:"actions"`
	Summary PlanSummary       `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	TotalItems    int `json:"total_items"`
	Drifted       int `json:"drifted"`
	Unrepairable  int `json:"unrepairable"`
	Orphans       int `json:"orphans"`
	RepairActions int `json:"repair_actions"`
	PurgeActions  int `json:"purge_actions"`
}

// ReconcileOptions controls which actions are planned and whether they run.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations.
	DryRun bool
	// DoRepair plans repair actions for repairable findings.
	DoRepair bool
	// DoPurge plans deletion of orphaned derived rows.
	DoPurge bool
	// Confirmed must be true for ApplyPlan to mutate anything.
	Confirmed bool
}
