package engine

import (
	"context"
	"strings"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/server"
	"equipment-tracker/core/utils"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"go.uber.org/zap"
)

const defaultAdminReturnedBy = "admin"

// Return applies a PIN-authorized return to the newest active checkout of
// the item that still has units out. The PIN must match that record.
func (e *Engine) Return(ctx context.Context, req *models.ReturnRequest) (*models.ReturnResult, error) {
	req.Normalize()
	if err := e.checkStruct(req); err != nil {
		return nil, err
	}
	if err := checkPIN(req.PIN); err != nil {
		return nil, err
	}
	if _, err := checkCounts(req.ConditionCounts); err != nil {
		return nil, err
	}

	var result *models.ReturnResult
	err := e.mutate(ctx, req.EquipmentID, func(items *store.EquipmentStore, ledger *store.Ledger) error {
		item, err := items.GetForUpdate(ctx, req.EquipmentID)
		if err != nil {
			return err
		}
		active, err := ledger.FindActive(ctx, item.ID)
		if err != nil {
			return err
		}

		var target *models.CheckoutRecord
		for i := range active {
			if active[i].Remaining() > 0 {
				target = &active[i]
				break
			}
		}
		if target == nil {
			return apperr.NotFound("No active checkout found for this equipment")
		}
		if !e.hasher.Matches(req.PIN, target.PinHash) {
			return apperr.Forbidden()
		}

		result, err = e.applyReturn(ctx, items, ledger, item, target, store.Return{
			Counts:     req.ConditionCounts,
			Notes:      req.ReturnNotes,
			ReturnedBy: utils.FirstNonEmpty(req.ReturnedBy, target.BorrowerName),
			AVMember:   req.AVMember,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Equipment returned",
		zap.String("equipment_id", req.EquipmentID),
		zap.String("checkout_id", result.Checkout.ID),
		zap.Int("remaining", result.Remaining),
	)
	return result, nil
}

// ForceReturn returns units against a specific record without a PIN. Only
// admin callers may use it.
func (e *Engine) ForceReturn(ctx context.Context, role server.Role, recordID string, req *models.ForceReturnRequest) (*models.ReturnResult, error) {
	if !role.IsAdmin() {
		return nil, apperr.Unauthorized("Admin access required")
	}
	req.Normalize()
	if err := e.checkStruct(req); err != nil {
		return nil, err
	}
	if _, err := checkCounts(req.ConditionCounts); err != nil {
		return nil, err
	}

	// The item id is needed before locking, and the lock order is item then record.
	rec, err := e.ledger.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}

	var result *models.ReturnResult
	err = e.mutate(ctx, rec.EquipmentID, func(items *store.EquipmentStore, ledger *store.Ledger) error {
		item, err := items.GetForUpdate(ctx, rec.EquipmentID)
		if err != nil {
			return err
		}
		target, err := ledger.GetForUpdate(ctx, recordID)
		if err != nil {
			return err
		}
		if !target.IsActive() {
			return apperr.Conflict(nil, "Checkout has already been returned")
		}
		result, err = e.applyReturn(ctx, items, ledger, item, target, store.Return{
			Counts:     req.ConditionCounts,
			Notes:      req.ReturnNotes,
			ReturnedBy: utils.FirstNonEmpty(req.ReturnedBy, defaultAdminReturnedBy),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Checkout force returned",
		zap.String("equipment_id", rec.EquipmentID),
		zap.String("checkout_id", recordID),
		zap.String("role", string(role)),
		zap.Int("remaining", result.Remaining),
	)
	return result, nil
}

func (e *Engine) applyReturn(ctx context.Context, items *store.EquipmentStore, ledger *store.Ledger, item *models.Equipment, target *models.CheckoutRecord, ret store.Return) (*models.ReturnResult, error) {
	ret.At = e.now()
	if err := ledger.ApplyReturn(ctx, target, ret); err != nil {
		return nil, err
	}
	// is_available follows the clamped count, so a fully reserved item stays unavailable.
	restock(item, ret.Counts)
	if err := items.Save(ctx, item); err != nil {
		return nil, err
	}
	return &models.ReturnResult{
		Success:       true,
		FullyReturned: !target.IsActive(),
		Remaining:     target.Remaining(),
		Checkout:      target,
		Equipment:     item,
	}, nil
}

// PreviewReturn finds the checkout a return would most likely target and
// suggests a condition breakdown for its balance. borrower narrows the
// search when set.
func (e *Engine) PreviewReturn(ctx context.Context, equipmentID, borrower string) (*models.ReturnPreview, error) {
	item, err := e.items.Get(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	active, err := e.ledger.FindActive(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	borrower = utils.Clean(borrower, 100)
	var open []models.CheckoutRecord
	for _, r := range active {
		if r.Remaining() <= 0 {
			continue
		}
		if borrower != "" && !strings.EqualFold(r.BorrowerName, borrower) {
			continue
		}
		open = append(open, r)
	}
	if len(open) == 0 {
		return nil, apperr.NotFound("No active checkout found for this equipment")
	}

	target := open[0]
	return &models.ReturnPreview{
		CheckoutID:      target.ID,
		BorrowerName:    target.BorrowerName,
		TeamName:        target.TeamName,
		Remaining:       target.Remaining(),
		Suggested:       models.SuggestReturn(target.CheckoutConditionCounts, target.Remaining()),
		ActiveCheckouts: len(open),
	}, nil
}
