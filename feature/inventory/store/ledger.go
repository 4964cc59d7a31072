package store

import (
	"context"
	"errors"
	"time"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/utils"
	"equipment-tracker/feature/inventory/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger reads and writes checkout_records.
type Ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger on db.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// WithTx returns a ledger bound to tx.
func (l *Ledger) WithTx(tx *gorm.DB) *Ledger {
	return &Ledger{db: tx}
}

func (l *Ledger) Get(ctx context.Context, id string) (*models.CheckoutRecord, error) {
	return l.first(l.db.WithContext(ctx), id)
}

// GetForUpdate loads a record under a row lock.
func (l *Ledger) GetForUpdate(ctx context.Context, id string) (*models.CheckoutRecord, error) {
	return l.first(l.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (l *Ledger) first(q *gorm.DB, id string) (*models.CheckoutRecord, error) {
	var r models.CheckoutRecord
	if err := q.First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Checkout record not found")
		}
		return nil, apperr.Internal(err, "failed to load checkout record")
	}
	return &r, nil
}

func newestFirst(q *gorm.DB) *gorm.DB {
	return q.Order("checkout_date DESC").Order("created_at DESC").Order("id DESC")
}

// FindActive lists the active records for an item, newest first.
func (l *Ledger) FindActive(ctx context.Context, equipmentID string) ([]models.CheckoutRecord, error) {
	var out []models.CheckoutRecord
	q := l.db.WithContext(ctx).Where("equipment_id = ? AND return_date IS NULL", equipmentID)
	if err := newestFirst(q).Find(&out).Error; err != nil {
		return nil, apperr.Internal(err, "failed to load active checkouts")
	}
	return out, nil
}

// FindMatch returns the newest active record for the item whose borrower and
// PIN digest both match, or nil.
func (l *Ledger) FindMatch(ctx context.Context, equipmentID, borrower, pinHash string) (*models.CheckoutRecord, error) {
	var out []models.CheckoutRecord
	q := l.db.WithContext(ctx).
		Where("equipment_id = ? AND borrower_name = ? AND pin_hash = ? AND return_date IS NULL", equipmentID, borrower, pinHash).
		Where("quantity_returned < quantity")
	if err := newestFirst(q).Limit(1).Find(&out).Error; err != nil {
		return nil, apperr.Internal(err, "failed to look up checkout")
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

// Append inserts a new record, filling id and checkout date when unset.
func (l *Ledger) Append(ctx context.Context, r *models.CheckoutRecord) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CheckoutDate.IsZero() {
		r.CheckoutDate = time.Now().UTC()
	}
	if r.CheckoutConditionCounts == nil {
		r.CheckoutConditionCounts = models.ConditionCounts{}
	}
	if r.ReturnConditionCounts == nil {
		r.ReturnConditionCounts = models.ConditionCounts{}
	}
	if err := l.db.WithContext(ctx).Create(r).Error; err != nil {
		return apperr.Internal(err, "failed to record checkout")
	}
	return nil
}

// MergeInto adds units to an active record. Notes are appended, not replaced.
func (l *Ledger) MergeInto(ctx context.Context, r *models.CheckoutRecord, added models.ConditionCounts, notes string) error {
	if !r.IsActive() {
		return apperr.Conflict(nil, "Checkout has already been returned")
	}
	r.Quantity += added.Sum()
	r.CheckoutConditionCounts = r.CheckoutConditionCounts.Add(added)
	r.Notes = utils.JoinNotes(r.Notes, notes)
	return l.save(ctx, r)
}

// Return describes one return applied to a record.
type Return struct {
	Counts     models.ConditionCounts
	Notes      string
	ReturnedBy string
	AVMember   string
	At         time.Time
}

// ApplyReturn records a partial or full return. The record is closed once
// every unit is back.
func (l *Ledger) ApplyReturn(ctx context.Context, r *models.CheckoutRecord, ret Return) error {
	n := ret.Counts.Sum()
	remaining := r.Remaining()
	if n < 1 || n > remaining {
		return apperr.Validation("Return quantity must be between 1 and %d", remaining)
	}

	r.QuantityReturned += n
	r.ReturnConditionCounts = r.ReturnConditionCounts.Add(ret.Counts)
	r.ConditionOnReturn = ret.Counts.Dominant()
	r.ReturnNotes = utils.JoinNotes(r.ReturnNotes, ret.Notes)
	if ret.ReturnedBy != "" {
		r.ReturnedBy = ret.ReturnedBy
	}
	if ret.AVMember != "" {
		r.AVMember = ret.AVMember
	}
	if r.QuantityReturned >= r.Quantity {
		at := ret.At
		if at.IsZero() {
			at = time.Now().UTC()
		}
		r.ReturnDate = &at
	}
	return l.save(ctx, r)
}

func (l *Ledger) save(ctx context.Context, r *models.CheckoutRecord) error {
	if err := l.db.WithContext(ctx).Save(r).Error; err != nil {
		return apperr.Internal(err, "failed to update checkout record")
	}
	return nil
}

// Delete removes a fully returned record.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := l.WithTx(tx).GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.IsActive() {
			return apperr.Conflict(map[string]any{"remaining": r.Remaining()},
				"Cannot delete an active checkout")
		}
		if err := tx.Delete(&models.CheckoutRecord{}, "id = ?", r.ID).Error; err != nil {
			return apperr.Internal(err, "failed to delete checkout record")
		}
		return nil
	})
}

// Outstanding sums the unreturned units of an item's active records.
func (l *Ledger) Outstanding(ctx context.Context, equipmentID string) (int, error) {
	var total int64
	err := l.db.WithContext(ctx).Model(&models.CheckoutRecord{}).
		Select("COALESCE(SUM(quantity - quantity_returned), 0)").
		Where("equipment_id = ? AND return_date IS NULL", equipmentID).
		Scan(&total).Error
	if err != nil {
		return 0, apperr.Internal(err, "failed to sum outstanding units")
	}
	return int(total), nil
}

// CountActive counts an item's active records.
func (l *Ledger) CountActive(ctx context.Context, equipmentID string) (int, error) {
	var n int64
	err := l.db.WithContext(ctx).Model(&models.CheckoutRecord{}).
		Where("equipment_id = ? AND return_date IS NULL", equipmentID).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Internal(err, "failed to count active checkouts")
	}
	return int(n), nil
}

// ListActive lists every active record joined with its equipment name.
func (l *Ledger) ListActive(ctx context.Context) ([]models.HistoryEntry, error) {
	return l.history(ctx, "", true)
}

// History lists records newest first, optionally filtered by a text match
// on borrower, team, equipment, location, contact or AV member.
func (l *Ledger) History(ctx context.Context, search string) ([]models.HistoryEntry, error) {
	return l.history(ctx, search, false)
}

func (l *Ledger) history(ctx context.Context, search string, activeOnly bool) ([]models.HistoryEntry, error) {
	q := l.db.WithContext(ctx).
		Table("checkout_records AS c").
		Select("c.*, e.name AS equipment_name").
		Joins("LEFT JOIN equipment_items AS e ON e.id = c.equipment_id")
	if activeOnly {
		q = q.Where("c.return_date IS NULL")
	}
	if search = utils.Clean(search, 100); search != "" {
		like := utils.LikePattern(search)
		esc := " LIKE ? ESCAPE '" + utils.LikeEscape + "'"
		q = q.Where(
			"LOWER(c.borrower_name)"+esc+
				" OR LOWER(c.team_name)"+esc+
				" OR LOWER(e.name)"+esc+
				" OR LOWER(c.location_used)"+esc+
				" OR LOWER(c.contact_number)"+esc+
				" OR LOWER(c.av_member)"+esc,
			like, like, like, like, like, like)
	}

	var out []models.HistoryEntry
	err := q.Order("c.checkout_date DESC").Order("c.created_at DESC").Find(&out).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to load checkout history")
	}
	return out, nil
}

// All returns every record. Used by audits.
func (l *Ledger) All(ctx context.Context) ([]models.CheckoutRecord, error) {
	var out []models.CheckoutRecord
	if err := l.db.WithContext(ctx).Order("equipment_id").Order("checkout_date").Find(&out).Error; err != nil {
		return nil, apperr.Internal(err, "failed to load checkout records")
	}
	return out, nil
}
