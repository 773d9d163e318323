// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-animal-registry/internal/app"
	"github.com/MKhiriev/go-animal-registry/internal/utils"
)

// getServerVersion godoc
//
//	@Summary	Server version
//	@Tags		info
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/api/version [get]
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgHelloWorld, http.StatusOK)
}
