package checks

import (
	"fmt"
	"strings"
	"sync"

	"equipment-tracker/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport is the result of comparing live tables with the GORM models.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// typeAliases maps a declared base type to the names dialects report for it.
var typeAliases = map[string][]string{
	"varchar": {"varchar", "character varying"},
	"text":    {"text"},
}

// CheckSchema verifies that every column mapped by tables exists in the
// database with a compatible type.
func CheckSchema(db *gorm.DB, tables ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}
	cache := &sync.Map{}

	for _, model := range tables {
		s, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}

		actualCols, err := database.GetTableColumns(db, s.Table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", s.Table, err))
			report.Matched = false
			continue
		}
		if len(actualCols) == 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", s.Table))
			report.Matched = false
			continue
		}

		actual := make(map[string]database.ColumnInfo, len(actualCols))
		for _, col := range actualCols {
			actual[col.Field] = col
		}

		tbl := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         "ok",
		}
		for _, field := range s.Fields {
			if field.DBName == "" {
				continue
			}
			col, ok := actual[field.DBName]
			if !ok {
				tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
				tbl.Status = "error"
				continue
			}
			expType := strings.ToLower(field.TagSettings["TYPE"])
			if expType != "" && !compatibleType(expType, col.Type) {
				tbl.TypeMismatches = append(tbl.TypeMismatches,
					fmt.Sprintf("%s: expected %s, got %s", field.DBName, expType, col.Type))
				tbl.Status = "error"
			}
		}
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[s.Table] = tbl
	}

	return report, nil
}

func compatibleType(expected, actual string) bool {
	base := expected
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	aliases, ok := typeAliases[base]
	if !ok {
		aliases = []string{base}
	}
	for _, alias := range aliases {
		if strings.Contains(actual, alias) {
			return true
		}
	}
	return false
}
