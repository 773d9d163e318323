// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, "postgres")

	require.Error(t, err)
	assert.ErrorIs(t, err, errNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "oracle")

	assert.ErrorIs(t, err, errUnsupportedDialect)
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // no expectations: goose's first query fails

	err = Migrate(context.Background(), db, "postgres")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestEmbeddedMigrations_PerDialect(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := embedMigrations.ReadDir(dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries, dir)
	}
}

func TestMigrate_SQLite_CreatesSchemaAndIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, "sqlite3"))
	require.NoError(t, Migrate(ctx, db, "sqlite3"))

	for _, table := range []string{"animals", "users"} {
		var name string
		err = db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}
