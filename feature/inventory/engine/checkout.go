package engine

import (
	"context"

	"equipment-tracker/core/apperr"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"go.uber.org/zap"
)

// Checkout lends units to a borrower.
//
// When the borrower already holds an active checkout of the item under the
// same PIN and ForceMerge is unset, nothing changes and the result carries a
// merge prompt with a confirmation token. Resubmitting with ForceMerge and the
// token merges into that exact record; availability is checked again either way.
func (e *Engine) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	req.Normalize()
	if err := e.checkStruct(req); err != nil {
		return nil, err
	}
	if err := checkPIN(req.PIN); err != nil {
		return nil, err
	}
	requested, err := checkCounts(req.ConditionCounts)
	if err != nil {
		return nil, err
	}
	if requested < 1 {
		return nil, apperr.Validation("At least one unit must be requested")
	}
	now := e.now()
	if err := checkExpectedReturn(req.ExpectedReturn, now); err != nil {
		return nil, err
	}
	pinHash, err := e.hasher.Hash(req.PIN)
	if err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	var (
		result = &models.CheckoutResult{}
		prompt *models.CheckoutRecord
	)
	err = e.mutate(ctx, req.EquipmentID, func(items *store.EquipmentStore, ledger *store.Ledger) error {
		item, err := items.GetForUpdate(ctx, req.EquipmentID)
		if err != nil {
			return err
		}
		if err := checkLoanable(item, req.ConditionCounts, requested); err != nil {
			return err
		}

		var target *models.CheckoutRecord
		switch {
		case req.ForceMerge && req.ConfirmToken != "":
			if target, err = e.redeemToken(ctx, ledger, req.ConfirmToken, req, pinHash); err != nil {
				return err
			}
		default:
			if target, err = ledger.FindMatch(ctx, item.ID, req.BorrowerName, pinHash); err != nil {
				return err
			}
			if target != nil && !req.ForceMerge {
				prompt = target
				return nil
			}
		}

		if target != nil {
			if err := ledger.MergeInto(ctx, target, req.ConditionCounts, req.Notes); err != nil {
				return err
			}
			result.Merged = true
		} else {
			target = &models.CheckoutRecord{
				EquipmentID:             item.ID,
				BorrowerName:            req.BorrowerName,
				TeamName:                req.TeamName,
				ContactNumber:           req.ContactNumber,
				LocationUsed:            req.LocationUsed,
				AVMember:                req.AVMember,
				PinHash:                 pinHash,
				Quantity:                requested,
				CheckoutConditionCounts: req.ConditionCounts.Clone().Compact(),
				CheckoutDate:            now,
				ExpectedReturn:          req.ExpectedReturn,
				Notes:                   req.Notes,
			}
			if err := ledger.Append(ctx, target); err != nil {
				return err
			}
		}

		item.ConditionCounts = item.ConditionCounts.Subtract(req.ConditionCounts)
		item.QuantityAvailable -= requested
		if err := items.Save(ctx, item); err != nil {
			return err
		}
		result.Checkout = target
		result.Equipment = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	if prompt != nil {
		token, err := e.issueToken(ctx, prompt)
		if err != nil {
			return nil, err
		}
		existing := prompt.Public()
		return &models.CheckoutResult{MergePrompt: true, Existing: &existing, ConfirmToken: token}, nil
	}
	if req.ConfirmToken != "" && result.Merged {
		e.dropToken(ctx, req.ConfirmToken)
	}

	result.Success = true
	e.logger.Info("Equipment checked out",
		zap.String("equipment_id", req.EquipmentID),
		zap.String("checkout_id", result.Checkout.ID),
		zap.Int("quantity", requested),
		zap.Bool("merged", result.Merged),
	)
	return result, nil
}

// checkLoanable rejects requests the item cannot currently satisfy.
func checkLoanable(item *models.Equipment, counts models.ConditionCounts, requested int) error {
	if item.IsRetired {
		return apperr.Conflict(nil, "Equipment has been retired")
	}
	if item.IsReserved {
		return apperr.Conflict(nil, "Equipment is reserved")
	}
	if requested > item.QuantityAvailable {
		return apperr.Conflict(map[string]any{
			"requested": requested,
			"available": item.QuantityAvailable,
		}, "Only %d available. You requested %d.", item.QuantityAvailable, requested)
	}
	if c, have, short := item.ConditionCounts.Shortfall(counts); short {
		return apperr.Conflict(map[string]any{
			"condition": c,
			"requested": counts[c],
			"available": have,
		}, "Only %d available in %s condition", have, c)
	}
	return nil
}
