// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-animal-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AnimalRepository persists animals. Rows are never physically removed:
// SoftDeleteAnimal only stamps deleted_at.
type AnimalRepository interface {
	CreateAnimal(ctx context.Context, animal models.Animal) (models.Animal, error)

	// GetAnimalByID returns the row regardless of its deleted_at value.
	GetAnimalByID(ctx context.Context, id int64) (models.Animal, error)

	// ListActiveAnimals returns rows with deleted_at IS NULL ordered by id.
	ListActiveAnimals(ctx context.Context) ([]models.Animal, error)

	UpdateAnimal(ctx context.Context, update models.AnimalUpdate) (models.Animal, error)
	SoftDeleteAnimal(ctx context.Context, id int64, deletedAt time.Time) (models.Animal, error)
}

// UserRepository persists accounts used by signup and login.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
