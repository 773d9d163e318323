// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-animal-registry/models"
)

// ─────────────────────────────────────────────
// Mock: service.AnimalService
// ─────────────────────────────────────────────

type mockAnimalService struct {
	createFn func(ctx context.Context, animal models.Animal) (models.Animal, error)
	getFn    func(ctx context.Context, id int64) (models.Animal, error)
	listFn   func(ctx context.Context) ([]models.Animal, error)
	updateFn func(ctx context.Context, update models.AnimalUpdate) (models.Animal, error)
	deleteFn func(ctx context.Context, id int64) (models.Animal, error)
}

func (m *mockAnimalService) CreateAnimal(ctx context.Context, animal models.Animal) (models.Animal, error) {
	if m.createFn != nil {
		return m.createFn(ctx, animal)
	}
	return animal, nil
}

func (m *mockAnimalService) GetAnimal(ctx context.Context, id int64) (models.Animal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Animal{ID: id}, nil
}

func (m *mockAnimalService) ListAnimals(ctx context.Context) ([]models.Animal, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Animal{}, nil
}

func (m *mockAnimalService) UpdateAnimal(ctx context.Context, update models.AnimalUpdate) (models.Animal, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Animal{ID: update.ID}, nil
}

func (m *mockAnimalService) DeleteAnimal(ctx context.Context, id int64) (models.Animal, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return models.Animal{ID: id}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return user, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
