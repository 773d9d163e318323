// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-animal-registry/models"
)

// AnimalService is the business contract of the /api/animals routes.
type AnimalService interface {
	// CreateAnimal stores a new animal. CreatedAt and UpdatedAt are set to
	// the current time, DeletedAt stays nil.
	CreateAnimal(ctx context.Context, animal models.Animal) (models.Animal, error)

	// GetAnimal returns the animal with the given id, soft-deleted or not.
	GetAnimal(ctx context.Context, id int64) (models.Animal, error)

	// ListAnimals returns every animal that has not been soft-deleted,
	// ordered by id. The result is never nil.
	ListAnimals(ctx context.Context) ([]models.Animal, error)

	// UpdateAnimal applies the non-empty fields of update and refreshes
	// UpdatedAt.
	UpdateAnimal(ctx context.Context, update models.AnimalUpdate) (models.Animal, error)

	// DeleteAnimal marks the animal as deleted and returns the row after
	// the update.
	DeleteAnimal(ctx context.Context, id int64) (models.Animal, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AnimalServiceWrapper defines middleware composition for AnimalService.
// Implementations wrap an existing AnimalService to add behavior such as
// logging or validating.
type AnimalServiceWrapper interface {
	Wrap(AnimalService) AnimalService // returns a decorated AnimalService applying additional behavior
}
