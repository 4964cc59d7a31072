package store

import (
	"context"
	"errors"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/utils"
	"equipment-tracker/feature/inventory/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EquipmentStore reads and writes equipment_items.
type EquipmentStore struct {
	db *gorm.DB
}

// NewEquipmentStore creates a store on db.
func NewEquipmentStore(db *gorm.DB) *EquipmentStore {
	return &EquipmentStore{db: db}
}

// WithTx returns a store bound to tx.
func (s *EquipmentStore) WithTx(tx *gorm.DB) *EquipmentStore {
	return &EquipmentStore{db: tx}
}

// Get loads an item by id.
func (s *EquipmentStore) Get(ctx context.Context, id string) (*models.Equipment, error) {
	return s.first(s.db.WithContext(ctx), id)
}

// GetForUpdate loads an item and holds its row lock until the surrounding
// transaction ends.
func (s *EquipmentStore) GetForUpdate(ctx context.Context, id string) (*models.Equipment, error) {
	return s.first(s.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (s *EquipmentStore) first(q *gorm.DB, id string) (*models.Equipment, error) {
	var e models.Equipment
	if err := q.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Equipment not found")
		}
		return nil, apperr.Internal(err, "failed to load equipment")
	}
	if e.ConditionCounts == nil {
		e.ConditionCounts = models.ConditionCounts{}
	}
	return &e, nil
}

// Save writes every column of e after recomputing the derived ones.
func (s *EquipmentStore) Save(ctx context.Context, e *models.Equipment) error {
	e.Derive()
	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return apperr.Internal(err, "failed to save equipment")
	}
	return nil
}

// Create inserts a new item. Condition counts must cover every unit.
func (s *EquipmentStore) Create(ctx context.Context, req *models.CreateEquipmentRequest) (*models.Equipment, error) {
	req.Normalize()
	if req.Name == "" {
		return nil, apperr.Validation("Name is required")
	}
	if !req.Category.Valid() {
		return nil, apperr.Validation("Invalid category: %s", req.Category)
	}
	if req.TotalQuantity < 0 {
		return nil, apperr.Validation("Total quantity must be a non-negative integer")
	}

	counts := req.ConditionCounts
	if counts == nil {
		counts = models.ConditionCounts{}
	}
	if err := counts.Validate(); err != nil {
		return nil, err
	}
	if counts.Sum() != req.TotalQuantity {
		return nil, apperr.Validation("Condition counts (%d) must equal total quantity (%d)", counts.Sum(), req.TotalQuantity)
	}

	reserved := 0
	if req.QuantityReserved != nil {
		reserved = *req.QuantityReserved
	}
	available := req.TotalQuantity - reserved
	if req.QuantityAvailable != nil {
		available = *req.QuantityAvailable
	}
	if err := checkCounters(req.TotalQuantity, available, reserved, 0); err != nil {
		return nil, err
	}

	e := &models.Equipment{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Category:          req.Category,
		TotalQuantity:     req.TotalQuantity,
		QuantityAvailable: available,
		QuantityReserved:  reserved,
		ConditionCounts:   counts.Clone().Compact(),
		Notes:             req.Notes,
	}
	e.Derive()
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create equipment")
	}
	return e, nil
}

// Update applies a partial patch. Units out on loan stay accounted for, so the
// condition mix must cover total minus outstanding.
func (s *EquipmentStore) Update(ctx context.Context, id string, req *models.UpdateEquipmentRequest) (*models.Equipment, error) {
	req.Normalize()

	var out *models.Equipment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := s.WithTx(tx)
		e, err := items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		outstanding, err := NewLedger(tx).Outstanding(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			if *req.Name == "" {
				return apperr.Validation("Name is required")
			}
			e.Name = *req.Name
		}
		if req.Category != nil {
			if !req.Category.Valid() {
				return apperr.Validation("Invalid category: %s", *req.Category)
			}
			e.Category = *req.Category
		}
		if req.Notes != nil {
			e.Notes = *req.Notes
		}
		if req.TotalQuantity != nil {
			if *req.TotalQuantity < 0 {
				return apperr.Validation("Total quantity must be a non-negative integer")
			}
			e.TotalQuantity = *req.TotalQuantity
		}
		if req.QuantityReserved != nil {
			e.QuantityReserved = *req.QuantityReserved
		}
		if req.QuantityAvailable != nil {
			e.QuantityAvailable = *req.QuantityAvailable
		} else if ceiling := e.TotalQuantity - e.QuantityReserved - outstanding; e.QuantityAvailable > ceiling && ceiling >= 0 {
			e.QuantityAvailable = ceiling
		}
		if req.ConditionCounts != nil {
			if err := req.ConditionCounts.Validate(); err != nil {
				return err
			}
			e.ConditionCounts = req.ConditionCounts.Clone().Compact()
		}

		onHand := e.TotalQuantity - outstanding
		if onHand < 0 {
			return apperr.Conflict(map[string]any{"outstanding": outstanding},
				"Total quantity cannot be less than the %d units checked out", outstanding)
		}
		if sum := e.ConditionCounts.Sum(); sum != onHand {
			return apperr.Validation("Condition counts (%d) must equal units on hand (%d)", sum, onHand)
		}
		if err := checkCounters(e.TotalQuantity, e.QuantityAvailable, e.QuantityReserved, outstanding); err != nil {
			return err
		}

		if err := items.Save(ctx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func checkCounters(total, available, reserved, outstanding int) error {
	switch {
	case total > models.MaxUnits, available > models.MaxUnits, reserved > models.MaxUnits:
		return apperr.Validation("Quantities cannot exceed %d", models.MaxUnits)
	case reserved < 0:
		return apperr.Validation("Reserved quantity must be a non-negative integer")
	case available < 0:
		return apperr.Validation("Available quantity must be a non-negative integer")
	case reserved > total:
		return apperr.Validation("Reserved quantity (%d) cannot exceed total quantity (%d)", reserved, total)
	case available+reserved+outstanding > total:
		return apperr.Validation("Available (%d) plus reserved (%d) plus checked out (%d) cannot exceed total quantity (%d)",
			available, reserved, outstanding, total)
	}
	return nil
}

// Retire hides an item from active and public views.
func (s *EquipmentStore) Retire(ctx context.Context, id string) (*models.Equipment, error) {
	return s.toggle(ctx, id, func(e *models.Equipment) { e.IsRetired = true })
}

// Restore brings a retired or reserved item back to the active view.
func (s *EquipmentStore) Restore(ctx context.Context, id string) (*models.Equipment, error) {
	return s.toggle(ctx, id, func(e *models.Equipment) {
		e.IsRetired = false
		e.IsReserved = false
	})
}

func (s *EquipmentStore) Reserve(ctx context.Context, id string) (*models.Equipment, error) {
	return s.toggle(ctx, id, func(e *models.Equipment) { e.IsReserved = true })
}

func (s *EquipmentStore) Unreserve(ctx context.Context, id string) (*models.Equipment, error) {
	return s.toggle(ctx, id, func(e *models.Equipment) { e.IsReserved = false })
}

func (s *EquipmentStore) toggle(ctx context.Context, id string, apply func(*models.Equipment)) (*models.Equipment, error) {
	var out *models.Equipment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := s.WithTx(tx)
		e, err := items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		apply(e)
		if err := items.Save(ctx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an item and its returned history. It refuses while any
// checkout of the item is still active.
func (s *EquipmentStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := s.WithTx(tx).GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		active, err := NewLedger(tx).CountActive(ctx, e.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return apperr.Conflict(map[string]any{"active_checkouts": active},
				"Cannot delete equipment with %d active checkout(s)", active)
		}
		if err := tx.Where("equipment_id = ?", e.ID).Delete(&models.CheckoutRecord{}).Error; err != nil {
			return apperr.Internal(err, "failed to delete checkout history")
		}
		if err := tx.Delete(&models.Equipment{}, "id = ?", e.ID).Error; err != nil {
			return apperr.Internal(err, "failed to delete equipment")
		}
		return nil
	})
}

// List returns the items in view ordered by name.
func (s *EquipmentStore) List(ctx context.Context, view models.View, filter models.ListFilter) ([]models.Equipment, error) {
	q := s.db.WithContext(ctx).Model(&models.Equipment{})
	switch view {
	case models.ViewArchived:
		q = q.Where("is_retired = ?", true)
	case models.ViewReserved:
		q = q.Where("is_retired = ? AND is_reserved = ?", false, true)
	default:
		q = q.Where("is_retired = ? AND is_reserved = ?", false, false)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '"+utils.LikeEscape+"'", utils.LikePattern(filter.Search))
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var items []models.Equipment
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list equipment")
	}
	return items, nil
}

// ListAll returns every item regardless of view.
func (s *EquipmentStore) ListAll(ctx context.Context) ([]models.Equipment, error) {
	var items []models.Equipment
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list equipment")
	}
	return items, nil
}
