// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) and SQLite
// (local development and tests) connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a bounded ping. SQLite connections are pinned to a single
// connection so an in-memory database survives across queries and transactions.
//
// # Schema Inspection
//
// GetTableColumns lists the actual columns of a table through GORM's migrator,
// which the integrity feature compares against the GORM models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "countries")
package database
