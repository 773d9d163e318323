// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-animal-registry/internal/app"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/utils"
	"github.com/MKhiriev/go-animal-registry/models"
)

// signup godoc
//
//	@Summary		Register a new user
//	@Description	The response carries the stored record, including the bcrypt hash.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.SignupRequest	true	"email and password are required"
//	@Success		201		{object}	models.User
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/signup [post]
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
	})
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// login godoc
//
//	@Summary	Log in and receive a session token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		models.LoginRequest	true	"email and password"
//	@Success	200			{object}	models.LoginResponse
//	@Failure	401			{object}	models.ErrorResponse
//	@Router		/api/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.User{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
