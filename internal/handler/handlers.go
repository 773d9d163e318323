// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/handler/http"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/service"
)

// Handlers groups the transport handlers served by the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler when an HTTP address is configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
