package engine

import (
	"context"
	"time"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/cache"
	"equipment-tracker/core/pin"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Engine applies checkouts and returns to an item and its ledger in one
// transaction.
type Engine struct {
	db       *gorm.DB
	items    *store.EquipmentStore
	ledger   *store.Ledger
	hasher   *pin.Hasher
	tokens   cache.Store
	tokenTTL time.Duration
	locks    *keyedMutex
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithTokenTTL sets how long a merge confirmation stays valid.
func WithTokenTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.tokenTTL = ttl }
}

// New creates an Engine. tokens holds merge confirmations and may be shared
// across processes.
func New(db *gorm.DB, hasher *pin.Hasher, tokens cache.Store, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		db:       db,
		items:    store.NewEquipmentStore(db),
		ledger:   store.NewLedger(db),
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: 15 * time.Minute,
		locks:    newKeyedMutex(),
		validate: newValidator(),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// mutate runs fn in a transaction while holding the item's in-process lock.
// Row locks taken inside fn cover other processes.
func (e *Engine) mutate(ctx context.Context, equipmentID string, fn func(items *store.EquipmentStore, ledger *store.Ledger) error) error {
	unlock := e.locks.Lock(equipmentID)
	defer unlock()

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(e.items.WithTx(tx), e.ledger.WithTx(tx))
	})
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	return apperr.Internal(err, "transaction failed")
}

// restock puts returned units back on hand.
func restock(item *models.Equipment, counts models.ConditionCounts) {
	item.ConditionCounts = item.ConditionCounts.Add(counts)
	available := item.QuantityAvailable + counts.Sum()
	if ceiling := item.LoanableCeiling(); available > ceiling {
		available = ceiling
	}
	if available < 0 {
		available = 0
	}
	item.QuantityAvailable = available
}
