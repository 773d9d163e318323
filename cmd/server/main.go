// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs the animal registry HTTP API.
//
//	@title						Animal Registry API
//	@version					1.0
//	@description				CRUD service for animal records with soft delete and JWT-gated access.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/handler"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/server"
	"github.com/MKhiriev/go-animal-registry/internal/service"
	"github.com/MKhiriev/go-animal-registry/internal/store"
	"github.com/MKhiriev/go-animal-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("animal-registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if cfg.App.TokenSignKey == "" {
		log.Warn().Msg("token sign key is empty, issued tokens are trivially forgeable")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Bool("auth_disabled", cfg.App.DisableAuth).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, storages)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
