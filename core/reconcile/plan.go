package reconcile

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ReconcileWithPlan reconciles all entities and plans actions per opts.
// Nothing is executed; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, db *gorm.DB, opts ReconcileOptions) (*ReconcilePlan, error) {
	cache, err := GetOrBuildCache(ctx, spec, db)
	if err != nil {
		return nil, err
	}

	results := reconcileFromCache(cache, spec.Adapter)
	summary, actions := buildPlanFromResults(results, cache, opts)
	return &ReconcilePlan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions of plan and returns how many ran.
// It is a no-op unless opts.Confirmed is set and opts.DryRun is not.
func ApplyPlan(ctx context.Context, spec *Spec, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun || len(plan.Actions) == 0 {
		return 0, nil
	}

	mutator, ok := spec.Adapter.(Mutator)
	if !ok {
		return 0, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}
	defer InvalidateCache(spec)

	var repairs, purges []Action
	for _, a := range plan.Actions {
		switch a.Type {
		case ActionRepair:
			repairs = append(repairs, a)
		case ActionPurgeOrphan:
			purges = append(purges, a)
		}
	}

	if len(repairs) > 0 {
		if batcher, ok := mutator.(RepairBatcher); ok {
			if err := batcher.RepairBatch(ctx, repairs); err != nil {
				return executed, fmt.Errorf("failed to batch repair: %w", err)
			}
			executed += len(repairs)
		} else {
			for _, a := range repairs {
				if err := mutator.Repair(ctx, a.Key, a.Derived); err != nil {
					return executed, fmt.Errorf("failed to repair %s: %w", a.Key, err)
				}
				executed++
			}
		}
	}

	for _, a := range purges {
		if err := mutator.PurgeOrphan(ctx, a.Key); err != nil {
			return executed, fmt.Errorf("failed to purge orphan %s: %w", a.Key, err)
		}
		executed++
	}

	return executed, nil
}

// ReconcileAndApply plans and, when confirmed, applies in one call.
func ReconcileAndApply(ctx context.Context, spec *Spec, db *gorm.DB, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, db, opts)
	if err != nil {
		return nil, 0, err
	}
	executed, err := ApplyPlan(ctx, spec, plan, opts)
	return plan, executed, err
}

func buildPlanFromResults(results []ReconcileResult, cache *ReconcileCache, opts ReconcileOptions) (PlanSummary, []Action) {
	var (
		summary PlanSummary
		actions []Action
	)
	summary.TotalItems = len(results)

	for _, r := range results {
		if r.Orphan() {
			summary.Orphans++
			if opts.DoPurge {
				actions = append(actions, Action{Type: ActionPurgeOrphan, Key: r.ID, Reason: "entity no longer exists"})
				summary.PurgeActions++
			}
			continue
		}
		if !r.Drifted() {
			continue
		}
		summary.Drifted++

		var repairable []string
		unrepairable := false
		for _, f := range r.Findings {
			if f.Repairable {
				repairable = append(repairable, f.String())
			} else {
				unrepairable = true
			}
		}
		if unrepairable {
			summary.Unrepairable++
		}

		if opts.DoRepair && len(repairable) > 0 {
			actions = append(actions, Action{
				Type:    ActionRepair,
				Key:     r.ID,
				Reason:  strings.Join(repairable, "; "),
				Derived: cache.Derived[r.ID],
			})
			summary.RepairActions++
		}
	}

	return summary, actions
}
