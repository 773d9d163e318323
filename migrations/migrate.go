// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the animal registry, one goose
// migration set per supported dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	errNilDB              = errors.New("db is nil")
	errUnsupportedDialect = errors.New("unsupported dialect")
)

// dialects maps a dialect name to its goose dialect and migration directory.
var dialects = map[string]struct {
	goose goose.Dialect
	dir   string
}{
	"postgres": {goose: goose.DialectPostgres, dir: "postgres"},
	"sqlite3":  {goose: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration for dialect ("postgres" or
// "sqlite3") to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	d, ok := dialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w %q", errUnsupportedDialect, dialect)
	}

	fsys, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening embedded files: %w", err)
	}

	provider, err := goose.NewProvider(d.goose, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
