// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure Postgres, MySQL or SQLite
// connections based on the application's configuration. SQLite is mainly used by
// tests and single-node installs; it is pinned to one connection so an in-memory
// database is shared by every query.
//
// # Schema Inspection
//
// GetTableColumns reads the live column list of a table for each dialect
// (information_schema on Postgres, SHOW COLUMNS on MySQL, PRAGMA table_info on
// SQLite). The integrity feature compares it with the columns the GORM models map.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "equipment_items")
package database
