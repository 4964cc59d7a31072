package models

// CheckoutResult is either a completed checkout or a merge prompt.
type CheckoutResult struct {
	Success bool `json:"success"`
	// MergePrompt is set when the borrower already holds an active checkout
	// of this item under the same PIN; nothing was changed.
	MergePrompt  bool            `json:"merge_prompt,omitempty"`
	Existing     *PublicCheckout `json:"existing,omitempty"`
	ConfirmToken string          `json:"confirm_token,omitempty"`
	Merged       bool            `json:"merged,omitempty"`
	Checkout     *CheckoutRecord `json:"checkout,omitempty"`
	Equipment    *Equipment      `json:"equipment,omitempty"`
}

// ReturnResult describes an applied return.
type ReturnResult struct {
	Success       bool            `json:"success"`
	FullyReturned bool            `json:"fully_returned"`
	Remaining     int             `json:"remaining"`
	Checkout      *CheckoutRecord `json:"checkout"`
	Equipment     *Equipment      `json:"equipment"`
}

// EquipmentDetail is the console view of one item.
type EquipmentDetail struct {
	Equipment
	Outstanding     int              `json:"outstanding"`
	ActiveCheckouts []CheckoutRecord `json:"active_checkouts"`
}

// ReturnPreview helps a borrower fill in a return form.
type ReturnPreview struct {
	CheckoutID      string          `json:"checkout_id"`
	BorrowerName    string          `json:"borrower_name"`
	TeamName        string          `json:"team_name"`
	Remaining       int             `json:"remaining"`
	Suggested       ConditionCounts `json:"suggested_condition_counts"`
	ActiveCheckouts int             `json:"active_checkouts"`
}

// SuggestReturn proposes a return breakdown for remaining units based on the
// mix that was checked out: the full mix when nothing has come back yet, a
// proportional share (last bucket takes the rounding remainder) after partial
// returns, and all good otherwise.
func SuggestReturn(checkedOut ConditionCounts, remaining int) ConditionCounts {
	total := checkedOut.Sum()
	switch {
	case remaining <= 0:
		return ConditionCounts{}
	case total > 0 && total == remaining:
		return checkedOut.Clone().Compact()
	case total > 0 && remaining < total:
		var buckets []Condition
		for _, c := range Conditions {
			if checkedOut[c] > 0 {
				buckets = append(buckets, c)
			}
		}
		out := ConditionCounts{}
		assigned := 0
		for i, c := range buckets {
			if i == len(buckets)-1 {
				out[c] = remaining - assigned
				break
			}
			share := (checkedOut[c]*remaining*2 + total) / (2 * total)
			if assigned+share > remaining {
				share = remaining - assigned
			}
			out[c] = share
			assigned += share
		}
		return out.Compact()
	default:
		return ConditionCounts{ConditionGood: remaining}
	}
}
