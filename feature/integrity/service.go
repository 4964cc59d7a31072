package integrity

import (
	"context"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/reconcile"
	"equipment-tracker/core/server"
	"equipment-tracker/core/storage"
	"equipment-tracker/feature/integrity/checks"
	"equipment-tracker/feature/integrity/ledger"
	"equipment-tracker/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerReport is a ledger audit plan and how many of its actions ran.
type LedgerReport struct {
	*reconcile.ReconcilePlan
	Executed int `json:"executed"`
}

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	cfg    storage.Config
	spec   *reconcile.Spec
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		cfg:    cfg,
		spec:   &reconcile.Spec{Adapter: ledger.NewAdapter(db)},
		logger: logger,
	}
}

func requireAdmin(role server.Role) error {
	if !role.IsAdmin() {
		return apperr.Unauthorized("Admin access required")
	}
	return nil
}

// AuditLedger compares every item with its checkout ledger. Planned repairs
// and purges run only when opts is confirmed and not a dry run.
func (s *Service) AuditLedger(ctx context.Context, role server.Role, opts reconcile.ReconcileOptions) (*LedgerReport, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	plan, executed, err := reconcile.ReconcileAndApply(ctx, s.spec, s.db, opts)
	if err != nil {
		return nil, apperr.Internal(err, "ledger audit failed")
	}
	if executed > 0 {
		s.logger.Info("Ledger repaired", zap.Int("executed", executed), zap.Int("drifted", plan.Summary.Drifted))
	}
	return &LedgerReport{ReconcilePlan: plan, Executed: executed}, nil
}

// AuditItem compares one item with its checkout ledger.
func (s *Service) AuditItem(ctx context.Context, role server.Role, id string) (*reconcile.ReconcileResult, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	result, err := reconcile.ReconcileOne(ctx, s.spec, s.db, id)
	if err != nil {
		return nil, apperr.Internal(err, "ledger audit failed")
	}
	if !result.RecordedPresent && !result.DerivedPresent {
		return nil, apperr.NotFound("Equipment not found")
	}
	return result, nil
}

// CheckSchema compares the live tables with the models.
func (s *Service) CheckSchema(role server.Role) (*checks.SchemaReport, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	report, err := checks.CheckSchema(s.db, models.Tables()...)
	if err != nil {
		return nil, apperr.Internal(err, "schema check failed")
	}
	return report, nil
}

// CheckStorage reports on the export bucket, creating it when fix is set.
func (s *Service) CheckStorage(ctx context.Context, role server.Role, fix bool) (*checks.StorageReport, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	report, err := checks.CheckStorage(ctx, s.client, s.cfg.Bucket)
	if err != nil {
		return nil, apperr.Internal(err, "storage check failed")
	}
	if !report.Exists && fix {
		if err := checks.FixStorage(ctx, s.client, s.cfg, s.logger); err != nil {
			return nil, apperr.Internal(err, "failed to create bucket")
		}
		report.Exists = true
		report.Status = "created"
	}
	return report, nil
}
