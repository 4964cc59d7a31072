package reports

import (
	"time"

	"equipment-tracker/feature/inventory/models"
)

// Dashboard summarizes inventory and loan state.
type Dashboard struct {
	TotalItems       int                     `json:"total_items"`
	AvailableItems   int                     `json:"available_items"`
	CheckedOutItems  int                     `json:"checked_out_items"`
	DamagedItems     int                     `json:"damaged_items"`
	ReservedItems    int                     `json:"reserved_items"`
	ArchivedItems    int                     `json:"archived_items"`
	ActiveCheckouts  int                     `json:"active_checkouts"`
	OutstandingUnits int                     `json:"outstanding_units"`
	OverdueCheckouts int                     `json:"overdue_checkouts"`
	ByCategory       map[models.Category]int `json:"by_category"`
	GeneratedAt      time.Time               `json:"generated_at"`
}

// ExportInfo describes a history snapshot in object storage.
type ExportInfo struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	Records   int       `json:"records,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
