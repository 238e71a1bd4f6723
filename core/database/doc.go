// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (the WordPress default) or
// SQLite connections based on the application's configuration. Table names carry the
// configured prefix so the service can share a schema with an existing WordPress
// install ("wp_users", "wp_usermeta").
//
// # Schema Inspection
//
// CheckSchema derives the expected tables and columns from gorm models and reports
// anything the live database is missing. The migrate command uses it for --check.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	issues, err := database.CheckSchema(db, &usermeta.User{}, &usermeta.Meta{})
package database
