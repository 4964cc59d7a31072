package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/server"
	"equipment-tracker/core/storage"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	exportPrefix     = "exports/history-"
	exportTimeLayout = "20060102T150405Z"
)

// Service builds dashboards and history exports.
type Service struct {
	items  *store.EquipmentStore
	ledger *store.Ledger
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new reports service.
func NewService(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		items:  store.NewEquipmentStore(db),
		ledger: store.NewLedger(db),
		client: client,
		cfg:    cfg,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func requireAdmin(role server.Role) error {
	if !role.IsAdmin() {
		return apperr.Unauthorized("Admin access required")
	}
	return nil
}

// Dashboard computes the current summary.
func (s *Service) Dashboard(ctx context.Context, role server.Role) (*Dashboard, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.ledger.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	d := &Dashboard{ByCategory: make(map[models.Category]int), GeneratedAt: now}
	for i := range items {
		e := &items[i]
		if e.IsRetired {
			d.ArchivedItems++
			continue
		}
		d.TotalItems++
		d.ByCategory[e.Category]++
		if e.IsReserved {
			d.ReservedItems++
		}
		if e.IsAvailable {
			d.AvailableItems++
		} else {
			d.CheckedOutItems++
		}
		if e.Condition == models.ConditionDamaged {
			d.DamagedItems++
		}
	}
	for i := range active {
		r := &active[i]
		d.ActiveCheckouts++
		d.OutstandingUnits += r.Remaining()
		if r.ExpectedReturn != nil && r.ExpectedReturn.Before(now) {
			d.OverdueCheckouts++
		}
	}
	return d, nil
}

// ExportHistory uploads the (optionally filtered) checkout history as JSON and
// prunes exports beyond the configured retention.
func (s *Service) ExportHistory(ctx context.Context, role server.Role, search string) (*ExportInfo, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	history, err := s.ledger.History(ctx, search)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return nil, apperr.Internal(err, "failed to encode history export")
	}

	if err := storage.EnsureBucket(ctx, s.client, s.cfg.Bucket, s.cfg.Region); err != nil {
		return nil, apperr.Internal(err, "export bucket unavailable")
	}

	created := s.now()
	key := exportPrefix + created.Format(exportTimeLayout) + ".json"
	_, err = s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, apperr.Internal(err, "failed to upload history export")
	}
	s.logger.Info("History exported", zap.String("key", key), zap.Int("records", len(history)))

	if err := s.prune(ctx); err != nil {
		s.logger.Warn("Failed to prune old exports", zap.Error(err))
	}
	return &ExportInfo{Key: key, Size: int64(len(raw)), Records: len(history), CreatedAt: created}, nil
}

// ListExports lists stored exports, newest first.
func (s *Service) ListExports(ctx context.Context, role server.Role) ([]ExportInfo, error) {
	if err := requireAdmin(role); err != nil {
		return nil, err
	}
	objs, err := s.listExportObjects(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list exports")
	}
	out := make([]ExportInfo, 0, len(objs))
	for _, o := range objs {
		out = append(out, ExportInfo{Key: o.Key, Size: o.Size, CreatedAt: exportTime(o)})
	}
	return out, nil
}

// listExportObjects returns export objects sorted newest first. Keys embed a
// sortable UTC timestamp.
func (s *Service) listExportObjects(ctx context.Context) ([]minio.ObjectInfo, error) {
	var objs []minio.ObjectInfo
	for obj := range s.client.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{Prefix: exportPrefix}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if strings.HasSuffix(obj.Key, ".json") {
			objs = append(objs, obj)
		}
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].Key > objs[j].Key })
	return objs, nil
}

func exportTime(o minio.ObjectInfo) time.Time {
	stamp := strings.TrimSuffix(strings.TrimPrefix(o.Key, exportPrefix), ".json")
	if t, err := time.Parse(exportTimeLayout, stamp); err == nil {
		return t
	}
	return o.LastModified
}

func (s *Service) prune(ctx context.Context) error {
	keep := s.cfg.ExportRetention
	if keep <= 0 {
		return nil
	}
	objs, err := s.listExportObjects(ctx)
	if err != nil || len(objs) <= keep {
		return err
	}

	stale := objs[keep:]
	ch := make(chan minio.ObjectInfo, len(stale))
	for _, o := range stale {
		ch <- o
	}
	close(ch)

	for rerr := range s.client.RemoveObjects(ctx, s.cfg.Bucket, ch, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			return rerr.Err
		}
	}
	s.logger.Info("Pruned old exports", zap.Int("removed", len(stale)))
	return nil
}
