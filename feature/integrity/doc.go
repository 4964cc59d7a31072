// Package integrity provides system health checks for the tracker.
//
// # Checks Provided
//
//   - Ledger: Audits every item's counters against its checkout ledger through
//     core/reconcile (see the ledger sub-package for the findings).
//   - Server: Validates that the connected database exposes every column the
//     GORM models map, with compatible types.
//   - Storage: Checks that the export bucket exists and counts stored exports.
//
// # HTTP Endpoints
//
//   - GET /api/admin/integrity : Runs all checks (report only).
//   - GET /api/admin/integrity/ledger : Ledger audit (supports ?repair=true and ?purge=true).
//   - GET /api/admin/integrity/ledger/:id : Ledger audit of one item.
//   - GET /api/admin/integrity/server : Schema check.
//   - GET /api/admin/integrity/storage : Storage check (supports ?fix=true).
package integrity
