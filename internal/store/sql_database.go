package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/migrations"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps a *sql.DB with the driver name it was opened with so migrations
// pick the right schema.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies the embedded schema for the connection's driver.
func (db *DB) Migrate() error {
	switch db.driver {
	case driverPostgres:
		return migrations.Migrate(db.DB)
	case driverSQLite:
		return migrations.MigrateClient(db.DB)
	default:
		return fmt.Errorf("no migrations for driver %q", db.driver)
	}
}
