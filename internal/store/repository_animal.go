// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/models"
)

// animalRepository is the database/sql implementation of [AnimalRepository].
// Queries are built with squirrel so the same code serves Postgres and SQLite.
type animalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnimalRepository constructs an [AnimalRepository] backed by db.
func NewAnimalRepository(db *DB, logger *logger.Logger) AnimalRepository {
	logger.Debug().Msg("creating animal repository")
	return &animalRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAnimal inserts animal and returns the stored row, including the
// store-assigned id.
func (r *animalRepository) CreateAnimal(ctx context.Context, animal models.Animal) (models.Animal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAnimalQuery(r.db.builder(), animal)
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.CreateAnimal").Msg("error building query")
		return models.Animal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAnimal(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.CreateAnimal").Msg("error inserting animal")
		return models.Animal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetAnimalByID returns the animal with the given id, soft-deleted or not.
//
// Error handling:
//   - no row → [ErrAnimalNotFound].
//   - transient driver errors are retried, then wrapped in [ErrExecutingQuery].
func (r *animalRepository) GetAnimalByID(ctx context.Context, id int64) (models.Animal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAnimalByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Animal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var animal models.Animal
	err = r.db.withReadRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		animal, scanErr = scanAnimal(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Animal{}, ErrAnimalNotFound
	case err != nil:
		log.Err(err).Str("func", "*animalRepository.GetAnimalByID").Int64("id", id).Msg("error selecting animal")
		return models.Animal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return animal, nil
}

// ListActiveAnimals returns all animals that are not soft-deleted, ordered by
// id. The result is never nil.
func (r *animalRepository) ListActiveAnimals(ctx context.Context) ([]models.Animal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveAnimalsQuery(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var animals []models.Animal
	err = r.db.withReadRetry(ctx, func(ctx context.Context) error {
		animals = make([]models.Animal, 0)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			animal, err := scanAnimal(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			animals = append(animals, animal)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*animalRepository.ListActiveAnimals").Msg("error listing animals")
		return nil, err
	}

	return animals, nil
}

// UpdateAnimal writes the non-nil fields of update and refreshes updated_at.
// Returns [ErrAnimalNotFound] when no row has update.ID.
func (r *animalRepository) UpdateAnimal(ctx context.Context, update models.AnimalUpdate) (models.Animal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAnimalQuery(r.db.builder(), update)
	if err != nil {
		return models.Animal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAnimal(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Animal{}, ErrAnimalNotFound
	case err != nil:
		log.Err(err).Str("func", "*animalRepository.UpdateAnimal").Int64("id", update.ID).Msg("error updating animal")
		return models.Animal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// SoftDeleteAnimal stamps deleted_at on the row and returns it.
// Returns [ErrAnimalNotFound] when no row has the given id.
func (r *animalRepository) SoftDeleteAnimal(ctx context.Context, id int64, deletedAt time.Time) (models.Animal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSoftDeleteAnimalQuery(r.db.builder(), id, deletedAt)
	if err != nil {
		return models.Animal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleted, err := scanAnimal(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Animal{}, ErrAnimalNotFound
	case err != nil:
		log.Err(err).Str("func", "*animalRepository.SoftDeleteAnimal").Int64("id", id).Msg("error deleting animal")
		return models.Animal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
