// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "animals.db")}}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func Test_dialectFromDSN(t *testing.T) {
	assert.Equal(t, DialectPostgres, dialectFromDSN("postgres://u:p@localhost:5432/db"))
	assert.Equal(t, DialectPostgres, dialectFromDSN("postgresql://localhost/db"))
	assert.Equal(t, DialectSQLite, dialectFromDSN("animals.db"))
	assert.Equal(t, DialectSQLite, dialectFromDSN("file::memory:?cache=shared"))
	assert.Equal(t, Dialect(""), dialectFromDSN(""))
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestSQLiteStorages_AnimalLifecycle(t *testing.T) {
	storages := newSQLiteStorages(t)
	repo := storages.AnimalRepository
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rex, err := repo.CreateAnimal(ctx, models.Animal{Name: "Rex", Species: "Dog", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Positive(t, rex.ID)
	assert.Nil(t, rex.Description)
	assert.Nil(t, rex.DeletedAt)
	assert.True(t, rex.UpdatedAt.Equal(now))

	tom, err := repo.CreateAnimal(ctx, models.Animal{
		Name: "Tom", Species: "Cat", Description: strPtr("grey"), ImgURL: strPtr("http://x/t.png"),
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Greater(t, tom.ID, rex.ID)

	// partial update keeps untouched fields
	later := now.Add(time.Minute)
	updated, err := repo.UpdateAnimal(ctx, models.AnimalUpdate{ID: tom.ID, Name: strPtr("Thomas"), UpdatedAt: later})
	require.NoError(t, err)
	assert.Equal(t, "Thomas", updated.Name)
	assert.Equal(t, "Cat", updated.Species)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "grey", *updated.Description)
	assert.True(t, updated.UpdatedAt.Equal(later))

	// soft delete hides from the list but not from the single lookup
	deletedAt := later.Add(time.Minute)
	deleted, err := repo.SoftDeleteAnimal(ctx, rex.ID, deletedAt)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)
	assert.True(t, deleted.DeletedAt.Equal(deletedAt))
	assert.True(t, deleted.UpdatedAt.Equal(now), "soft delete must not touch updated_at")

	list, err := repo.ListActiveAnimals(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tom.ID, list[0].ID)

	got, err := repo.GetAnimalByID(ctx, rex.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted())

	// missing ids
	_, err = repo.GetAnimalByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrAnimalNotFound)
	_, err = repo.UpdateAnimal(ctx, models.AnimalUpdate{ID: 9999, Name: strPtr("x"), UpdatedAt: later})
	assert.ErrorIs(t, err, ErrAnimalNotFound)
	_, err = repo.SoftDeleteAnimal(ctx, 9999, later)
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}

func TestSQLiteStorages_ListEmpty(t *testing.T) {
	storages := newSQLiteStorages(t)

	list, err := storages.AnimalRepository.ListActiveAnimals(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSQLiteStorages_Users(t *testing.T) {
	storages := newSQLiteStorages(t)
	repo := storages.UserRepository
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	created, err := repo.CreateUser(ctx, models.User{Email: "a@x.io", Password: "hash-1", CreatedAt: now})
	require.NoError(t, err)
	assert.Positive(t, created.UserID)
	assert.Nil(t, created.Name)

	_, err = repo.CreateUser(ctx, models.User{Email: "a@x.io", Password: "hash-2", CreatedAt: now})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.FindUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "hash-1", found.Password, "existing hash must not be overwritten")

	_, err = repo.FindUserByEmail(ctx, "nobody@x.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
