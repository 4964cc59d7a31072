package models

import "time"

// Equipment is one inventory line: a named item owned in TotalQuantity units.
//
// ConditionCounts covers the units on hand (available plus reserved); units out
// on loan are accounted for by the checkout ledger. Condition and IsAvailable are
// derived columns kept for listing and filtering.
type Equipment struct {
	ID                string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string          `gorm:"type:varchar(100);not null;index" json:"name"`
	Category          Category        `gorm:"type:varchar(32);not null;index" json:"category"`
	TotalQuantity     int             `gorm:"not null" json:"total_quantity"`
	QuantityAvailable int             `gorm:"not null" json:"quantity_available"`
	QuantityReserved  int             `gorm:"not null" json:"quantity_reserved"`
	ConditionCounts   ConditionCounts `gorm:"type:text" json:"condition_counts"`
	Condition         Condition       `gorm:"type:varchar(16)" json:"condition"`
	IsAvailable       bool            `gorm:"not null" json:"is_available"`
	IsRetired         bool            `gorm:"not null;index" json:"is_retired"`
	IsReserved        bool            `gorm:"not null" json:"is_reserved"`
	Notes             string          `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (Equipment) TableName() string { return "equipment_items" }

// Derive recomputes the derived columns from the counters.
func (e *Equipment) Derive() {
	if e.ConditionCounts == nil {
		e.ConditionCounts = ConditionCounts{}
	}
	e.Condition = e.ConditionCounts.Dominant()
	e.IsAvailable = e.QuantityAvailable > 0
}

// LoanableCeiling is the most units that can ever be available at once.
func (e *Equipment) LoanableCeiling() int {
	return e.TotalQuantity - e.QuantityReserved
}

// View is the listing bucket an item belongs to.
type View string

const (
	ViewActive   View = "active"
	ViewReserved View = "reserved"
	ViewArchived View = "archived"
)

func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewActive, "":
		return ViewActive, true
	case ViewReserved:
		return ViewReserved, true
	case ViewArchived:
		return ViewArchived, true
	}
	return "", false
}

// PublicEquipment is the catalog projection shown to borrowers.
type PublicEquipment struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          Category        `json:"category"`
	VisibleTotal      int             `json:"visible_total"`
	QuantityAvailable int             `json:"quantity_available"`
	ConditionCounts   ConditionCounts `json:"condition_counts"`
	Condition         Condition       `json:"condition"`
	IsAvailable       bool            `json:"is_available"`
	Notes             string          `json:"notes"`
}

func (e *Equipment) Public() PublicEquipment {
	return PublicEquipment{
		ID:                e.ID,
		Name:              e.Name,
		Category:          e.Category,
		VisibleTotal:      e.LoanableCeiling(),
		QuantityAvailable: e.QuantityAvailable,
		ConditionCounts:   e.ConditionCounts,
		Condition:         e.Condition,
		IsAvailable:       e.IsAvailable,
		Notes:             e.Notes,
	}
}

// Tables returns the persisted models in migration order.
func Tables() []any {
	return []any{&Equipment{}, &CheckoutRecord{}}
}
