// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/validators"
	"github.com/MKhiriev/go-animal-registry/models"
)

// AnimalValidationService rejects malformed requests before they reach the
// wrapped AnimalService. Returned errors wrap both ErrInvalidDataProvided and
// the validator error that caused the rejection.
type AnimalValidationService struct {
	inner     AnimalService
	validator validators.Validator
}

func NewAnimalValidationService() AnimalServiceWrapper {
	return &AnimalValidationService{
		validator: validators.NewAnimalValidator(),
	}
}

func (v *AnimalValidationService) CreateAnimal(ctx context.Context, animal models.Animal) (models.Animal, error) {
	if err := v.validator.Validate(ctx, animal, validators.FieldName, validators.FieldSpecies); err != nil {
		return models.Animal{}, v.invalid(ctx, err)
	}

	return v.inner.CreateAnimal(ctx, animal)
}

// GetAnimal passes any id through: ids without a row are reported by the store
// as not found.
func (v *AnimalValidationService) GetAnimal(ctx context.Context, id int64) (models.Animal, error) {
	return v.inner.GetAnimal(ctx, id)
}

func (v *AnimalValidationService) ListAnimals(ctx context.Context) ([]models.Animal, error) {
	return v.inner.ListAnimals(ctx)
}

func (v *AnimalValidationService) UpdateAnimal(ctx context.Context, update models.AnimalUpdate) (models.Animal, error) {
	if err := v.validator.Validate(ctx, update, validators.FieldUpdateFields); err != nil {
		return models.Animal{}, v.invalid(ctx, err)
	}

	return v.inner.UpdateAnimal(ctx, update)
}

func (v *AnimalValidationService) DeleteAnimal(ctx context.Context, id int64) (models.Animal, error) {
	return v.inner.DeleteAnimal(ctx, id)
}

func (v *AnimalValidationService) Wrap(wrapper AnimalService) AnimalService {
	v.inner = wrapper
	return v
}

func (v *AnimalValidationService) invalid(ctx context.Context, err error) error {
	logger.FromContext(ctx).Debug().Err(err).Msg("animal validation failed")
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
