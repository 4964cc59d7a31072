// Package models defines the inventory ledger types.
//
// # Entities
//
//   - Equipment: one inventory line with quantity counters and the condition
//     mix of the units currently on hand.
//   - CheckoutRecord: one ledger entry for units lent to a borrower, carrying
//     the PIN digest and partial-return progress.
//
// ConditionCounts is stored as a JSON text column so the same models migrate on
// PostgreSQL, MySQL and SQLite.
//
// # Usage
//
//	counts := models.ConditionCounts{models.ConditionGood: 2}
//	if err := counts.Validate(); err != nil {
//		return err
//	}
//	item.ConditionCounts = item.ConditionCounts.Subtract(counts)
//	item.Derive()
package models
