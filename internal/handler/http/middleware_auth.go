// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-animal-registry/internal/app"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "Authorization" header, strips the optional "Bearer" scheme,
// validates the token via [service.AuthService.ParseToken] and, on success,
// stores the user ID from the token in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler. The user store
// is not consulted.
//
// Rejections:
//   - 401 when the header is absent, blank, or carries only the scheme.
//   - 403 when the token is malformed, badly signed, expired or carries the
//     wrong issuer.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if errors.Is(err, utils.ErrNoToken) {
			log.Debug().Err(err).Msg("request without token")
			utils.WriteError(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeServiceError(w, r, err, "error occurred during parsing token")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
