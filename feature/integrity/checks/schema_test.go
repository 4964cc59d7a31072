package checks

import (
	"errors"
	"regexp"
	"testing"

	"equipment-tracker/core/database"
	"equipment-tracker/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, models.Tables()...)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Migrated(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.Tables()...))

	report, err := CheckSchema(db, models.Tables()...)
	require.NoError(t, err)
	assert.True(t, report.Matched, report)
	assert.Equal(t, "sqlite", report.Driver)
	assert.Equal(t, "ok", report.Tables["equipment_items"].Status)
	assert.Equal(t, "ok", report.Tables["checkout_records"].Status)
	assert.Empty(t, report.Errors)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Equipment{}))

	report, err := CheckSchema(db, models.Tables()...)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"Table checkout_records does not exist"}, report.Errors)
}

func TestCheckSchema_MissingColumnAndTypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "varchar(36)", "NO", "PRI", nil, "")
	rows.AddRow("name", "int(11)", "NO", "", nil, "")
	rows.AddRow("category", "varchar(32)", "NO", "", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `equipment_items`")).WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `checkout_records`")).WillReturnError(errors.New("access denied"))

	report, err := CheckSchema(db, models.Tables()...)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, "mysql", report.Driver)

	tbl := report.Tables["equipment_items"]
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "condition_counts")
	assert.NotContains(t, tbl.MissingColumns, "category")
	assert.Equal(t, []string{"name: expected varchar(100), got int(11)"}, tbl.TypeMismatches)

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "checkout_records")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompatibleType(t *testing.T) {
	tests := []struct {
		expected string
		actual   string
		want     bool
	}{
		{"varchar(36)", "varchar(36)", true},
		{"varchar(36)", "character varying", true},
		{"text", "longtext", true},
		{"varchar(16)", "text", false},
		{"bigint", "bigint(20)", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, compatibleType(tt.expected, tt.actual), tt.expected+" vs "+tt.actual)
	}
}
