// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (or SQLite, for local runs and
// tests) connections based on the application's configuration. The only consumer is
// the DE (Recusana) inventory feed, which reads stock levels from a partner database.
//
// # Connect
//
// Connect opens and pings the database with the configured timeouts. The connection is
// optional: when it fails, the DE feed is disabled and the other feeds keep working.
//
// # Schema Inspection
//
// MissingColumns checks a table against the columns a feed needs, so a schema change on
// the partner side is reported at startup instead of as an empty location set.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "stock_levels", "store_no", "item_no")
package database
