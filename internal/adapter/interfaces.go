// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the animal registry HTTP API.
//
// The primary abstraction is [RegistryAdapter], which hides the REST routes,
// bearer-token handling and JSON encoding from callers such as cmd/client.
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-animal-registry/models"
)

// RegistryAdapter defines communication with the animal registry server.
type RegistryAdapter interface {
	// SetToken stores the bearer token attached to every animal request.
	// Login calls it automatically.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Signup registers a new account and returns the stored user.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login exchanges credentials for a session token and keeps it for
	// subsequent requests.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// ListAnimals returns every active animal.
	ListAnimals(ctx context.Context) ([]models.Animal, error)

	// GetAnimal returns one animal, soft-deleted or not.
	GetAnimal(ctx context.Context, id int64) (models.Animal, error)

	// CreateAnimal stores a new animal and returns it with its id.
	CreateAnimal(ctx context.Context, req models.AnimalRequest) (models.Animal, error)

	// UpdateAnimal applies the non-empty fields of req to the animal.
	UpdateAnimal(ctx context.Context, id int64, req models.AnimalRequest) (models.Animal, error)

	// DeleteAnimal soft-deletes the animal and returns its final state.
	DeleteAnimal(ctx context.Context, id int64) (models.Animal, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
