// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-animal-registry/internal/app"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/utils"
	"github.com/MKhiriev/go-animal-registry/models"
	"github.com/go-chi/chi/v5"
)

// listAnimals godoc
//
//	@Summary	List active animals
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		models.Animal
//	@Failure	401	{object}	models.ErrorResponse
//	@Failure	403	{object}	models.ErrorResponse
//	@Router		/api/animals [get]
func (h *Handler) listAnimals(w http.ResponseWriter, r *http.Request) {
	animals, err := h.services.AnimalService.ListAnimals(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing animals")
		return
	}

	utils.WriteJSON(w, animals, http.StatusOK)
}

// getAnimal godoc
//
//	@Summary	Get an animal by id, including soft-deleted ones
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Animal ID"
//	@Success	200	{object}	models.Animal
//	@Failure	400	{object}	models.ErrorResponse
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/api/animals/{id} [get]
func (h *Handler) getAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := animalIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid animal id")
		return
	}

	animal, err := h.services.AnimalService.GetAnimal(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting animal")
		return
	}

	utils.WriteJSON(w, animal, http.StatusOK)
}

// createAnimal godoc
//
//	@Summary	Create an animal
//	@Tags		animals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		animal	body		models.AnimalRequest	true	"name and species are required"
//	@Success	201		{object}	models.Animal
//	@Failure	400		{object}	models.ErrorResponse
//	@Router		/api/animals [post]
func (h *Handler) createAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.AnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	animal, err := h.services.AnimalService.CreateAnimal(r.Context(), request.ToAnimal())
	if err != nil {
		writeServiceError(w, r, err, "error creating animal")
		return
	}

	utils.WriteJSON(w, animal, http.StatusCreated)
}

// updateAnimal godoc
//
//	@Summary	Update an animal
//	@Tags		animals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"Animal ID"
//	@Param		animal	body		models.AnimalRequest	true	"at least one of name, species, description"
//	@Success	200		{object}	models.Animal
//	@Failure	400		{object}	models.ErrorResponse
//	@Failure	404		{object}	models.ErrorResponse
//	@Router		/api/animals/{id} [put]
func (h *Handler) updateAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := animalIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid animal id")
		return
	}

	var request models.AnimalRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	animal, err := h.services.AnimalService.UpdateAnimal(r.Context(), request.ToUpdate(id))
	if err != nil {
		writeServiceError(w, r, err, "error updating animal")
		return
	}

	utils.WriteJSON(w, animal, http.StatusOK)
}

// deleteAnimal godoc
//
//	@Summary	Soft-delete an animal
//	@Tags		animals
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Animal ID"
//	@Success	200	{object}	models.Animal
//	@Failure	400	{object}	models.ErrorResponse
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/api/animals/{id} [delete]
func (h *Handler) deleteAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := animalIDFromPath(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid animal id")
		return
	}

	animal, err := h.services.AnimalService.DeleteAnimal(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error deleting animal")
		return
	}

	utils.WriteJSON(w, animal, http.StatusOK)
}

func animalIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidAnimalID, raw, err)
	}
	return id, nil
}
