// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/store"
	"github.com/MKhiriev/go-animal-registry/models"
)

// animalService is the concrete implementation of AnimalService. It owns the
// timestamps of the animal lifecycle and delegates persistence to the
// AnimalRepository.
type animalService struct {
	animalRepository store.AnimalRepository

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

func NewAnimalService(animalRepository store.AnimalRepository, logger *logger.Logger) AnimalService {
	return &animalService{
		animalRepository: animalRepository,
		now:              func() time.Time { return time.Now().UTC() },
		logger:           logger,
	}
}

func (s *animalService) CreateAnimal(ctx context.Context, animal models.Animal) (models.Animal, error) {
	now := s.now()
	animal.CreatedAt = now
	animal.UpdatedAt = now
	animal.DeletedAt = nil

	created, err := s.animalRepository.CreateAnimal(ctx, animal)
	if err != nil {
		return models.Animal{}, fmt.Errorf("error creating animal: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("id", created.ID).Msg("animal created")
	return created, nil
}

func (s *animalService) GetAnimal(ctx context.Context, id int64) (models.Animal, error) {
	animal, err := s.animalRepository.GetAnimalByID(ctx, id)
	if err != nil {
		return models.Animal{}, fmt.Errorf("error getting animal %d: %w", id, err)
	}

	return animal, nil
}

func (s *animalService) ListAnimals(ctx context.Context) ([]models.Animal, error) {
	animals, err := s.animalRepository.ListActiveAnimals(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing animals: %w", err)
	}
	if animals == nil {
		animals = []models.Animal{}
	}

	return animals, nil
}

// UpdateAnimal drops empty-string fields before the store call, so they never
// overwrite stored values.
func (s *animalService) UpdateAnimal(ctx context.Context, update models.AnimalUpdate) (models.Animal, error) {
	update = update.Normalize()
	update.UpdatedAt = s.now()

	updated, err := s.animalRepository.UpdateAnimal(ctx, update)
	if err != nil {
		return models.Animal{}, fmt.Errorf("error updating animal %d: %w", update.ID, err)
	}

	logger.FromContext(ctx).Debug().Int64("id", updated.ID).Msg("animal updated")
	return updated, nil
}

func (s *animalService) DeleteAnimal(ctx context.Context, id int64) (models.Animal, error) {
	deleted, err := s.animalRepository.SoftDeleteAnimal(ctx, id, s.now())
	if err != nil {
		return models.Animal{}, fmt.Errorf("error deleting animal %d: %w", id, err)
	}

	logger.FromContext(ctx).Debug().Int64("id", deleted.ID).Msg("animal soft-deleted")
	return deleted, nil
}
