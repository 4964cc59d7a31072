// Package reports provides the admin dashboard and checkout history exports.
//
// Exports are JSON arrays of history entries (PIN digests are never
// serialized) written to the configured bucket as
// exports/history-<UTC timestamp>.json. Only the newest
// storage.export_retention snapshots are kept.
//
// # HTTP Endpoints
//
//   - GET  /api/admin/dashboard       : Inventory and loan statistics.
//   - GET  /api/admin/exports         : Stored history snapshots, newest first.
//   - POST /api/admin/exports/history : Upload a new snapshot (optional search filter).
package reports
