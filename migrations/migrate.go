// Package migrations embeds the SQL schema of the server (Postgres) and of
// the terminal client (SQLite) and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed client/*.sql
var embedClientMigrations embed.FS

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate brings a Postgres database up to the latest server schema.
func Migrate(db *sql.DB) error {
	return up(db, embedMigrations, "pgx", ".")
}

// MigrateClient brings the client's SQLite database up to the latest schema.
func MigrateClient(db *sql.DB) error {
	return up(db, embedClientMigrations, "sqlite3", "client")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
