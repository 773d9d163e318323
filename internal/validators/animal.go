// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-animal-registry/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the animal name.
	FieldName = "name"

	// FieldSpecies targets the animal species.
	FieldSpecies = "species"

	// FieldUpdateFields requires at least one of name, species and description
	// to carry a value. imgUrl alone does not count.
	FieldUpdateFields = "update_fields"
)

// AnimalValidator implements the Validator interface for models.Animal
// (create payloads) and models.AnimalUpdate (partial updates).
//
// Both value and pointer forms are accepted.
type AnimalValidator struct {
}

// NewAnimalValidator constructs a new AnimalValidator
// and returns it as the Validator interface.
func NewAnimalValidator() Validator {
	return &AnimalValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Without explicit fields every rule for the type is checked.
func (v *AnimalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Animal:
		return v.validateAnimal(ctx, value, fields...)
	case *models.Animal:
		return v.validateAnimal(ctx, *value, fields...)

	case models.AnimalUpdate:
		return v.validateAnimalUpdate(ctx, value, fields...)
	case *models.AnimalUpdate:
		return v.validateAnimalUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AnimalValidator) validateAnimal(_ context.Context, animal models.Animal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSpecies}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if animal.Name == "" {
				return ErrNameAndSpeciesRequired
			}
		case FieldSpecies:
			if animal.Species == "" {
				return ErrNameAndSpeciesRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AnimalValidator) validateAnimalUpdate(_ context.Context, update models.AnimalUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateFields}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdateFields:
			u := update.Normalize()
			if u.Name == nil && u.Species == nil && u.Description == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
