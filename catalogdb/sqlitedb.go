package catalogdb

import (
	"database/sql"
	"fmt"
	"log"

	"playinsights.teamg8.org/internal/appconf"
)

// InitDB creates a new SQLite database with the apps table
func InitDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	// Open database connection
	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Create tables within a transaction
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	createAppsTable(tx)

	// Create indexes for better performance
	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_apps_category ON apps(category);
		CREATE INDEX IF NOT EXISTS idx_apps_geo_region ON apps(geo_region);
		CREATE INDEX IF NOT EXISTS idx_apps_developer_id ON apps(developer_id);
		CREATE INDEX IF NOT EXISTS idx_apps_released ON apps(released);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		log.Fatalf("error creating indexes: %v", err)
	}

	// Commit transaction
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createAppsTable(tx *sql.Tx) {
	createTable(tx, "apps", `
		CREATE TABLE IF NOT EXISTS apps (
			app_name      TEXT NOT NULL,
			category      TEXT NOT NULL,
			developer_id  TEXT NOT NULL,
			geo_region    TEXT NOT NULL,
			economic_zone TEXT NOT NULL DEFAULT '',
			installs      INTEGER NOT NULL DEFAULT 0,
			price         REAL NOT NULL DEFAULT 0,
			rating        REAL NOT NULL DEFAULT 0,
			released      TEXT NOT NULL DEFAULT '',
			revenue       REAL NOT NULL DEFAULT 0
		);
	`)
}

// createTable creates a table in the database
func createTable(tx *sql.Tx, tableName string, createStmt string) {
	_, err := tx.Exec(createStmt)
	if err != nil {
		log.Fatalf("Error creating table %s: %v", tableName, err)
	}
}
