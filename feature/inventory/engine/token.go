package engine

import (
	"context"
	"encoding/json"
	"errors"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/cache"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenPrefix = "merge:confirm:"

// mergeTicket binds a confirmation token to the record it was issued for.
type mergeTicket struct {
	RecordID     string `json:"record_id"`
	EquipmentID  string `json:"equipment_id"`
	BorrowerName string `json:"borrower_name"`
	PinHash      string `json:"pin_hash"`
}

func (e *Engine) issueToken(ctx context.Context, r *models.CheckoutRecord) (string, error) {
	token := uuid.NewString()
	raw, err := json.Marshal(mergeTicket{
		RecordID:     r.ID,
		EquipmentID:  r.EquipmentID,
		BorrowerName: r.BorrowerName,
		PinHash:      r.PinHash,
	})
	if err != nil {
		return "", apperr.Internal(err, "failed to encode merge token")
	}
	if err := e.tokens.Set(ctx, tokenPrefix+token, raw, e.tokenTTL); err != nil {
		return "", apperr.Internal(err, "failed to store merge token")
	}
	return token, nil
}

// redeemToken resolves a token to its locked record. The token must have
// been issued for the same item, borrower and PIN.
func (e *Engine) redeemToken(ctx context.Context, ledger *store.Ledger, token string, req *models.CheckoutRequest, pinHash string) (*models.CheckoutRecord, error) {
	raw, err := e.tokens.Get(ctx, tokenPrefix+token)
	if errors.Is(err, cache.ErrMiss) {
		return nil, apperr.Conflict(nil, "Merge confirmation expired. Please submit the checkout again")
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load merge token")
	}

	var t mergeTicket
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, apperr.Internal(err, "failed to decode merge token")
	}
	if t.EquipmentID != req.EquipmentID || t.BorrowerName != req.BorrowerName || t.PinHash != pinHash {
		return nil, apperr.Conflict(nil, "Merge confirmation does not match this checkout")
	}

	r, err := ledger.GetForUpdate(ctx, t.RecordID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Conflict(nil, "The checkout to merge into no longer exists")
		}
		return nil, err
	}
	if !r.IsActive() || r.Remaining() <= 0 {
		return nil, apperr.Conflict(nil, "The checkout to merge into has already been returned")
	}
	return r, nil
}

func (e *Engine) dropToken(ctx context.Context, token string) {
	if err := e.tokens.Delete(ctx, tokenPrefix+token); err != nil {
		e.logger.Warn("Failed to delete merge token", zap.Error(err))
	}
}
