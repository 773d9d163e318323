// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
)

// Storages groups the repositories built on one database handle.
type Storages struct {
	AnimalRepository AnimalRepository
	UserRepository   UserRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("database migrated")

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AnimalRepository: NewAnimalRepository(db, log),
		UserRepository:   NewUserRepository(db, log),
		db:               db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
