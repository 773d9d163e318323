// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/service"
)

type Handler struct {
	services *service.Services

	// authEnabled puts the token check in front of the animal routes.
	authEnabled bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth_enabled", !cfg.DisableAuth).Msg("http handler created")
	return &Handler{
		services:    services,
		authEnabled: !cfg.DisableAuth,
		logger:      logger,
	}
}
