// Package db opens the local client database and applies schema migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite database at dsn and brings its schema up to
// date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	d, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, d); err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}
