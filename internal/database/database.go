package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/auth/*.sql migrations/notes/*.sql
var migrations embed.FS

// Migration sets. The app keeps credentials and notes in two independent
// database files, each with its own schema.
const (
	SetAuth  = "auth"
	SetNotes = "notes"
)

// Open opens a SQLite database at the given path and runs the migrations
// for the named set. Safe to call on an existing database; migrations are
// idempotent.
func Open(dbPath, set string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := runMigrations(db, set); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB, set string) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations/"+set); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
