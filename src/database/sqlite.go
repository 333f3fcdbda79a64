package database

import (
	"database/sql"
	"fmt"

	"fintrack/migrations"
	"fintrack/src/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// SetupDB opens the SQLite database, verifies the connection and applies any
// pending migrations.
func SetupDB(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", cfg.Database.Path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v\nPlease check the database path %q is writable", err, cfg.Database.Path)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the embedded goose migrations. It is exposed so tests
// can migrate in-memory databases.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
