package models

import "time"

// CheckoutRecord is one ledger entry: units borrowed under a borrower and PIN,
// with partial returns accumulated in QuantityReturned.
type CheckoutRecord struct {
	ID                      string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	EquipmentID             string          `gorm:"type:varchar(36);not null;index" json:"equipment_id"`
	BorrowerName            string          `gorm:"type:varchar(100);not null;index" json:"borrower_name"`
	TeamName                string          `gorm:"type:varchar(100);not null" json:"team_name"`
	ContactNumber           string          `gorm:"type:varchar(100)" json:"contact_number"`
	LocationUsed            string          `gorm:"type:varchar(100)" json:"location_used"`
	AVMember                string          `gorm:"column:av_member;type:varchar(100)" json:"av_member"`
	PinHash                 string          `gorm:"type:varchar(64);not null" json:"-"`
	Quantity                int             `gorm:"not null" json:"quantity"`
	QuantityReturned        int             `gorm:"not null" json:"quantity_returned"`
	CheckoutConditionCounts ConditionCounts `gorm:"type:text" json:"checkout_condition_counts"`
	ReturnConditionCounts   ConditionCounts `gorm:"type:text" json:"return_condition_counts"`
	ConditionOnReturn       Condition       `gorm:"type:varchar(16)" json:"condition_on_return,omitempty"`
	CheckoutDate            time.Time       `gorm:"not null;index" json:"checkout_date"`
	ExpectedReturn          *time.Time      `json:"expected_return"`
	ReturnDate              *time.Time      `gorm:"index" json:"return_date"`
	Notes                   string          `gorm:"type:text" json:"notes"`
	ReturnNotes             string          `gorm:"type:text" json:"return_notes"`
	ReturnedBy              string          `gorm:"type:varchar(100)" json:"returned_by"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

func (CheckoutRecord) TableName() string { return "checkout_records" }

// Remaining is the outstanding balance.
func (r *CheckoutRecord) Remaining() int {
	return r.Quantity - r.QuantityReturned
}

// IsActive reports whether any quantity is still out.
func (r *CheckoutRecord) IsActive() bool {
	return r.ReturnDate == nil
}

// HistoryEntry is a ledger row joined with its equipment name.
type HistoryEntry struct {
	CheckoutRecord
	EquipmentName string `json:"equipment_name"`
}

// PublicCheckout is the PIN-free view of an active checkout.
type PublicCheckout struct {
	ID                      string          `json:"id"`
	EquipmentID             string          `json:"equipment_id"`
	BorrowerName            string          `json:"borrower_name"`
	TeamName                string          `json:"team_name"`
	Quantity                int             `json:"quantity"`
	QuantityReturned        int             `json:"quantity_returned"`
	Remaining               int             `json:"remaining"`
	CheckoutConditionCounts ConditionCounts `json:"checkout_condition_counts"`
	CheckoutDate            time.Time       `json:"checkout_date"`
	ExpectedReturn          *time.Time      `json:"expected_return"`
}

func (r *CheckoutRecord) Public() PublicCheckout {
	return PublicCheckout{
		ID:                      r.ID,
		EquipmentID:             r.EquipmentID,
		BorrowerName:            r.BorrowerName,
		TeamName:                r.TeamName,
		Quantity:                r.Quantity,
		QuantityReturned:        r.QuantityReturned,
		Remaining:               r.Remaining(),
		CheckoutConditionCounts: r.CheckoutConditionCounts,
		CheckoutDate:            r.CheckoutDate,
		ExpectedReturn:          r.ExpectedReturn,
	}
}
