package inventory

import (
	"context"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/server"
	"equipment-tracker/feature/inventory/engine"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes the catalog, borrower actions and inventory administration.
// Admin operations take the caller role explicitly.
type Service struct {
	items  *store.EquipmentStore
	ledger *store.Ledger
	engine *engine.Engine
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(db *gorm.DB, eng *engine.Engine, logger *zap.Logger) *Service {
	return &Service{
		items:  store.NewEquipmentStore(db),
		ledger: store.NewLedger(db),
		engine: eng,
		logger: logger,
	}
}

func requireAdmin(role server.Role) error {
	if !role.IsAdmin() {
		return apperr.Unauthorized("Admin access required")
	}
	return nil
}

// Catalog lists the active items in their public projection.
func (s *Service) Catalog(ctx context.Context, filter models.ListFilter) ([]models.PublicEquipment, error) {
	items, err := s.items.List(ctx, models.ViewActive, filter)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicEquipment, 0, len(items))
	for i := range items {
		out = append(out, items[i].Public())
	}
	return out, nil
}

// CatalogItem returns one active item. Retired and reserved items are hidden.
func (s *Service) CatalogItem(ctx context.Context, id string) (*models.PublicEquipment, error) {
	e, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.IsRetired || e.IsReserved {
		return nil, apperr.NotFound("Equipment not found")
	}
	p := e.Public()
	return &p, nil
}

// ActiveCheckouts lists an item's outstanding checkouts without PINs or contact details.
func (s *Service) ActiveCheckouts(ctx context.Context, equipmentID string) ([]models.PublicCheckout, error) {
	if _, err := s.items.Get(ctx, equipmentID); err != nil {
		return nil, err
	}
	active, err := s.ledger.FindActive(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicCheckout, 0, len(active))
	for i := range active {
		out = append(out, active[i].Public())
	}
	return out, nil
}

func (s *Service) PreviewReturn(ctx context.Context, equipmentID, borrower string) (*models.ReturnPreview, error) {
	return s.engine.PreviewReturn(ctx, equipmentID, borrower)
}

func (s *Service) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	return s.engine.Checkout(ctx, req)
}

func (s *Service) Return(ctx context.Context, req *models.ReturnRequest) (*models.ReturnResult, error) {
	return s.engine.Return(ctx, req)
}

// ListEquipment lists every item in a view with full counters.
func (s *Service) ListEquipment(ctx context.Context, role server.Role, view models.View, filter models.ListFilter) ([]models.Equipment, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	return s.items.List(ctx, view, filter)
}

// EquipmentDetail returns an item with the full records of its active checkouts.
func (s *Service) EquipmentDetail(ctx context.Context, role server.Role, id string) (*models.EquipmentDetail, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	e, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	active, err := s.ledger.FindActive(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &models.EquipmentDetail{Equipment: *e, ActiveCheckouts: active}
	for i := range active {
		d.Outstanding += active[i].Remaining()
	}
	return d, nil
}

func (s *Service) CreateEquipment(ctx context.Context, role server.Role, req *models.CreateEquipmentRequest) (*models.Equipment, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	e, err := s.items.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Equipment created", zap.String("equipment_id", e.ID), zap.String("name", e.Name))
	return e, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, role server.Role, id string, req *models.UpdateEquipmentRequest) (*models.Equipment, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	return s.items.Update(ctx, id, req)
}

// Action is an admin flag toggle on an item.
type Action string

const (
	ActionRetire    Action = "retire"
	ActionRestore   Action = "restore"
	ActionReserve   Action = "reserve"
	ActionUnreserve Action = "unreserve"
)

// SetState applies a flag toggle.
func (s *Service) SetState(ctx context.Context, role server.Role, id string, action Action) (*models.Equipment, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	var (
		e   *models.Equipment
		err error
	)
	switch action {
	case ActionRetire:
		e, err = s.items.Retire(ctx, id)
	case ActionRestore:
		e, err = s.items.Restore(ctx, id)
	case ActionReserve:
		e, err = s.items.Reserve(ctx, id)
	case ActionUnreserve:
		e, err = s.items.Unreserve(ctx, id)
	default:
		return nil, apperr.Validation("Unknown action: %s", action)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("Equipment state changed", zap.String("equipment_id", id), zap.String("action", string(action)))
	return e, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, role server.Role, id string) error {
	if err := requireAdmin(role); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Equipment deleted", zap.String("equipment_id", id))
	return nil
}

// History lists checkout records, newest first, filtered by search.
func (s *Service) History(ctx context.Context, role server.Role, search string) ([]models.HistoryEntry, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	return s.ledger.History(ctx, search)
}

// ActiveLedger lists every active checkout across items.
func (s *Service) ActiveLedger(ctx context.Context, role server.Role) ([]models.HistoryEntry, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	return s.ledger.ListActive(ctx)
}

func (s *Service) ForceReturn(ctx context.Context, role server.Role, recordID string, req *models.ForceReturnRequest) (*models.ReturnResult, error) {
	return s.engine.ForceReturn(ctx, role, recordID, req)
}

// DeleteCheckout removes a fully returned record.
func (s *Service) DeleteCheckout(ctx context.Context, role server.Role, recordID string) error {
	if err := requireAdmin(role); err != nil {
		return err
	}
	if err := s.ledger.Delete(ctx, recordID); err != nil {
		return err
	}
	s.logger.Info("Checkout record deleted", zap.String("checkout_id", recordID))
	return nil
}
