// Package ledger implements the reconcile adapter that audits equipment
// counters against the checkout ledger.
//
// Recorded items are equipment rows; derived items are the per-item State
// folded from checkout records. Checkout rows referencing a deleted item show
// up as orphans and can be purged.
//
// Findings:
//
//   - condition_counts: the condition mix does not cover total minus outstanding.
//   - quantity_available: availability exceeds total minus reserved minus outstanding.
//   - is_available, condition: derived flags are stale.
//   - over_returned_checkouts: records returned more units than they borrowed.
//
// Only the availability counter and the derived flags are repairable.
package ledger
