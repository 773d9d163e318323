// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-animal-registry/internal/app"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/service"
	"github.com/MKhiriev/go-animal-registry/internal/store"
	"github.com/MKhiriev/go-animal-registry/internal/utils"
	"github.com/MKhiriev/go-animal-registry/internal/validators"
)

// errorResponse is the status and client-facing message for a known error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order, so specific validator errors come before
// the generic service.ErrInvalidDataProvided that wraps them.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidAnimalID, errorResponse{http.StatusBadRequest, app.MsgInvalidAnimalID}},
	{validators.ErrNameAndSpeciesRequired, errorResponse{http.StatusBadRequest, app.MsgNameAndSpeciesRequired}},
	{validators.ErrNoFieldsToUpdate, errorResponse{http.StatusBadRequest, app.MsgUpdateFieldsRequired}},
	{validators.ErrEmailAndPasswordRequired, errorResponse{http.StatusBadRequest, app.MsgEmailAndPasswordRequired}},
	{validators.ErrPasswordTooLong, errorResponse{http.StatusBadRequest, app.MsgPasswordTooLong}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidJSON}},

	{store.ErrEmailAlreadyExists, errorResponse{http.StatusBadRequest, app.MsgEmailAlreadyExists}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusForbidden, app.MsgInvalidToken}},

	{store.ErrAnimalNotFound, errorResponse{http.StatusNotFound, app.MsgAnimalNotFound}},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return internalErrorResponse
}

// writeServiceError logs err through the request logger and writes the mapped
// JSON error body. Unexpected errors are logged at error level with full
// detail while the client only sees the generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
