package integrity

import (
	"context"
	"testing"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/database"
	"equipment-tracker/core/reconcile"
	"equipment-tracker/core/server"
	"equipment-tracker/core/storage"
	"equipment-tracker/core/storage/mocks"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/inventory/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB, *mocks.Client) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.Tables()...))

	mockClient := new(mocks.Client)
	svc := NewService(db, mockClient, storage.Config{Bucket: "test-bucket"}, zap.NewNop())
	return svc, db, mockClient
}

// driftedItem creates an item whose availability ignores two outstanding units.
func driftedItem(t *testing.T, db *gorm.DB) *models.Equipment {
	t.Helper()
	ctx := context.Background()
	e, err := store.NewEquipmentStore(db).Create(ctx, &models.CreateEquipmentRequest{
		Name:            "Wireless Mic",
		Category:        models.CategoryAudio,
		TotalQuantity:   4,
		ConditionCounts: models.ConditionCounts{models.ConditionGood: 4},
	})
	require.NoError(t, err)
	require.NoError(t, store.NewLedger(db).Append(ctx, &models.CheckoutRecord{
		EquipmentID:             e.ID,
		BorrowerName:            "Jane Doe",
		TeamName:                "Youth",
		PinHash:                 "digest",
		Quantity:                2,
		CheckoutConditionCounts: models.ConditionCounts{models.ConditionGood: 2},
	}))
	require.NoError(t, db.Model(&models.Equipment{}).Where("id = ?", e.ID).
		Update("condition_counts", models.ConditionCounts{models.ConditionGood: 2}).Error)
	return e
}

func TestService_RequiresAdmin(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.AuditLedger(ctx, server.RolePublic, reconcile.ReconcileOptions{})
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	_, err = svc.AuditItem(ctx, server.RolePublic, uuid.NewString())
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	_, err = svc.CheckSchema(server.RolePublic)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
	_, err = svc.CheckStorage(ctx, server.RolePublic, false)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestService_AuditLedger(t *testing.T) {
	svc, db, _ := setupService(t)
	ctx := context.Background()
	e := driftedItem(t, db)

	report, err := svc.AuditLedger(ctx, server.RoleAdmin, reconcile.ReconcileOptions{DoRepair: true, DryRun: true, Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Drifted)
	assert.Equal(t, 1, report.Summary.RepairActions)
	assert.Zero(t, report.Executed)

	report, err = svc.AuditLedger(ctx, server.RoleAdmin, reconcile.ReconcileOptions{DoRepair: true, Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Executed)

	result, err := svc.AuditItem(ctx, server.RoleAdmin, e.ID)
	require.NoError(t, err)
	assert.False(t, result.Drifted())
	assert.Equal(t, "Wireless Mic", result.Name)
}

func TestService_AuditItem_NotFound(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.AuditItem(context.Background(), server.RoleAdmin, uuid.NewString())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestService_CheckSchema(t *testing.T) {
	svc, _, _ := setupService(t)

	report, err := svc.CheckSchema(server.RoleMaster)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Len(t, report.Tables, 2)
}

func TestService_CheckStorage(t *testing.T) {
	t.Run("missing without fix", func(t *testing.T) {
		svc, _, mockClient := setupService(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

		report, err := svc.CheckStorage(context.Background(), server.RoleAdmin, false)
		require.NoError(t, err)
		assert.Equal(t, "missing", report.Status)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fix creates bucket", func(t *testing.T) {
		svc, _, mockClient := setupService(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)

		report, err := svc.CheckStorage(context.Background(), server.RoleAdmin, true)
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.Equal(t, "created", report.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("unreachable", func(t *testing.T) {
		svc, _, mockClient := setupService(t)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

		_, err := svc.CheckStorage(context.Background(), server.RoleAdmin, false)
		assert.True(t, apperr.Is(err, apperr.KindInternal))
	})
}
