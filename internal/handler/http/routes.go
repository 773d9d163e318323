// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	_ "github.com/MKhiriev/go-animal-registry/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)

	router.Get("/", h.hello)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
	})

	router.Group(func(r chi.Router) {
		if h.authEnabled {
			r.Use(h.auth)
		}

		r.Get("/api/animals", h.listAnimals)
		r.Post("/api/animals", h.createAnimal)
		r.Get("/api/animals/{id}", h.getAnimal)
		r.Put("/api/animals/{id}", h.updateAnimal)
		r.Delete("/api/animals/{id}", h.deleteAnimal)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
