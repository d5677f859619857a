// Package database handles database connections and reading tables as snapshots.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration, and renders a table as delimited text so a db:// location can be
// reconciled exactly like a file.
//
// # Table snapshots
//
// ReadTable inspects the table's columns, moves the primary key column to the
// front so it becomes the record key, and emits one line per row ordered by that
// key. NULL values become empty fields.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	blob, err := database.ReadTable(ctx, db, "customers", ",")
package database
