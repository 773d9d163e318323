// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/store"
)

type Services struct {
	AnimalService  AnimalService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds every service on top of storages. The animal service is
// wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	animalService := NewAnimalValidationService().Wrap(
		NewAnimalService(storages.AnimalRepository, logger),
	)

	return &Services{
		AnimalService:  animalService,
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
