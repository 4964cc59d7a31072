package models

import (
	"time"

	"equipment-tracker/core/utils"
)

const (
	maxNameLength  = 100
	maxNotesLength = 500
)

// CheckoutRequest is a borrower's request to take units out.
type CheckoutRequest struct {
	EquipmentID     string          `json:"equipment_id" validate:"required,uuid"`
	BorrowerName    string          `json:"borrower_name" validate:"required"`
	TeamName        string          `json:"team_name" validate:"required"`
	PIN             string          `json:"pin" validate:"required"`
	ConditionCounts ConditionCounts `json:"condition_counts" validate:"required"`
	ContactNumber   string          `json:"contact_number"`
	LocationUsed    string          `json:"location_used"`
	AVMember        string          `json:"av_member"`
	ExpectedReturn  *time.Time      `json:"expected_return"`
	Notes           string          `json:"notes"`
	// ForceMerge confirms a merge into the borrower's existing checkout.
	ForceMerge bool `json:"force_merge"`
	// ConfirmToken pins the merge to the record named in the prompt.
	ConfirmToken string `json:"confirm_token"`
}

// Normalize trims free text and truncates it to the column limits.
func (r *CheckoutRequest) Normalize() {
	r.EquipmentID = utils.Clean(r.EquipmentID, 0)
	r.BorrowerName = utils.Clean(r.BorrowerName, maxNameLength)
	r.TeamName = utils.Clean(r.TeamName, maxNameLength)
	r.PIN = utils.Clean(r.PIN, 0)
	r.ContactNumber = utils.Clean(r.ContactNumber, maxNameLength)
	r.LocationUsed = utils.Clean(r.LocationUsed, maxNameLength)
	r.AVMember = utils.Clean(r.AVMember, maxNameLength)
	r.Notes = utils.Clean(r.Notes, maxNotesLength)
	r.ConfirmToken = utils.Clean(r.ConfirmToken, 0)
}

// ReturnRequest is a borrower's PIN-authorized return.
type ReturnRequest struct {
	EquipmentID     string          `json:"equipment_id" validate:"required,uuid"`
	PIN             string          `json:"pin" validate:"required"`
	ConditionCounts ConditionCounts `json:"condition_counts" validate:"required"`
	ReturnNotes     string          `json:"return_notes"`
	ReturnedBy      string          `json:"returned_by"`
	AVMember        string          `json:"av_member"`
}

func (r *ReturnRequest) Normalize() {
	r.EquipmentID = utils.Clean(r.EquipmentID, 0)
	r.PIN = utils.Clean(r.PIN, 0)
	r.ReturnNotes = utils.Clean(r.ReturnNotes, maxNotesLength)
	r.ReturnedBy = utils.Clean(r.ReturnedBy, maxNameLength)
	r.AVMember = utils.Clean(r.AVMember, maxNameLength)
}

// ForceReturnRequest is an admin return against a specific record.
type ForceReturnRequest struct {
	ConditionCounts ConditionCounts `json:"condition_counts" validate:"required"`
	ReturnNotes     string          `json:"return_notes"`
	ReturnedBy      string          `json:"returned_by"`
}

func (r *ForceReturnRequest) Normalize() {
	r.ReturnNotes = utils.Clean(r.ReturnNotes, maxNotesLength)
	r.ReturnedBy = utils.Clean(r.ReturnedBy, maxNameLength)
}

// CreateEquipmentRequest creates an inventory line.
type CreateEquipmentRequest struct {
	Name            string          `json:"name" validate:"required"`
	Category        Category        `json:"category" validate:"required"`
	TotalQuantity   int             `json:"total_quantity" validate:"gte=0"`
	ConditionCounts ConditionCounts `json:"condition_counts"`
	Notes           string          `json:"notes"`
	// QuantityReserved defaults to 0.
	QuantityReserved *int `json:"quantity_reserved"`
	// QuantityAvailable defaults to TotalQuantity - QuantityReserved.
	QuantityAvailable *int `json:"quantity_available"`
}

func (r *CreateEquipmentRequest) Normalize() {
	r.Name = utils.Clean(r.Name, maxNameLength)
	r.Notes = utils.Clean(r.Notes, maxNotesLength)
}

// UpdateEquipmentRequest is a partial update; nil fields are left alone.
type UpdateEquipmentRequest struct {
	Name              *string         `json:"name"`
	Category          *Category       `json:"category"`
	TotalQuantity     *int            `json:"total_quantity"`
	QuantityAvailable *int            `json:"quantity_available"`
	QuantityReserved  *int            `json:"quantity_reserved"`
	ConditionCounts   ConditionCounts `json:"condition_counts"`
	Notes             *string         `json:"notes"`
}

func (r *UpdateEquipmentRequest) Normalize() {
	if r.Name != nil {
		n := utils.Clean(*r.Name, maxNameLength)
		r.Name = &n
	}
	if r.Notes != nil {
		n := utils.Clean(*r.Notes, maxNotesLength)
		r.Notes = &n
	}
}

// ListFilter narrows equipment listings.
type ListFilter struct {
	Search   string
	Category Category
}
