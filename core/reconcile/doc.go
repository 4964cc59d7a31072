// Package reconcile provides a generic engine for reconciling an authoritative
// ("recorded") table against the state implied by a secondary ("derived") source.
//
// The tracker uses it to audit equipment counters against the checkout ledger:
// the equipment row records quantity_available and the condition mix, while the
// outstanding balance of active checkouts implies what those counters should be.
//
// # Architecture
//
//  1. Engine: builds the union of keys from both indices, flags orphans (derived
//     only) and asks the adapter to compare each recorded entity.
//  2. Adapter: model-specific loading and comparison. Adapters that implement
//     Mutator can repair recorded rows and purge orphans.
//  3. Cache: TTL-based caching with singleflight stampede protection. Both
//     indices are loaded concurrently with errgroup.
//
// # Plans
//
// ReconcileWithPlan never mutates. ApplyPlan executes only when the options are
// Confirmed and not DryRun, mirroring the --yes / --dry-run flags of the CLI.
//
// # Usage
//
//	spec := &reconcile.Spec{Adapter: ledger.NewAdapter(db), CacheTTL: time.Minute}
//	plan, err := reconcile.ReconcileWithPlan(ctx, spec, db, reconcile.ReconcileOptions{DoRepair: true})
//	executed, err := reconcile.ApplyPlan(ctx, spec, plan, reconcile.ReconcileOptions{DoRepair: true, Confirmed: true})
package reconcile
