// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/utils"
	"github.com/MKhiriev/go-animal-registry/models"
)

type httpRegistryAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRegistryAdapter constructs the REST implementation of
// [RegistryAdapter]. It normalises cfg.HTTPAddress (a missing scheme defaults
// to http) and applies cfg.RequestTimeout and cfg.Token to the client.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPRegistryAdapter(cfg config.ClientConfig, logger *logger.Logger) (RegistryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpRegistryAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	adapter.SetToken(cfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errAddressNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRegistryAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = strings.TrimSpace(token)
	h.client.SetBearerToken(h.token)
}

func (h *httpRegistryAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token
}

// Signup POSTs the credentials to /api/signup.
func (h *httpRegistryAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/api/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login POSTs the credentials to /api/login and stores the returned token.
// The token is read from the JSON body; the Authorization response header is
// used when the body carries none.
func (h *httpRegistryAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := loginResp.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("email", req.Email).Msg("logged in")

	return token, nil
}

func (h *httpRegistryAdapter) ListAnimals(ctx context.Context) ([]models.Animal, error) {
	var animals []models.Animal

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&animals).
		Get("/api/animals")
	if err != nil {
		return nil, fmt.Errorf("list animals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return animals, nil
}

func (h *httpRegistryAdapter) GetAnimal(ctx context.Context, id int64) (models.Animal, error) {
	var animal models.Animal

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&animal).
		Get("/api/animals/{id}")
	if err != nil {
		return models.Animal{}, fmt.Errorf("get animal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Animal{}, err
	}

	return animal, nil
}

func (h *httpRegistryAdapter) CreateAnimal(ctx context.Context, req models.AnimalRequest) (models.Animal, error) {
	var animal models.Animal

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&animal).
		Post("/api/animals")
	if err != nil {
		return models.Animal{}, fmt.Errorf("create animal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Animal{}, err
	}

	return animal, nil
}

func (h *httpRegistryAdapter) UpdateAnimal(ctx context.Context, id int64, req models.AnimalRequest) (models.Animal, error) {
	var animal models.Animal

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		SetResult(&animal).
		Put("/api/animals/{id}")
	if err != nil {
		return models.Animal{}, fmt.Errorf("update animal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Animal{}, err
	}

	return animal, nil
}

func (h *httpRegistryAdapter) DeleteAnimal(ctx context.Context, id int64) (models.Animal, error) {
	var animal models.Animal

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&animal).
		Delete("/api/animals/{id}")
	if err != nil {
		return models.Animal{}, fmt.Errorf("delete animal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Animal{}, err
	}

	return animal, nil
}

func (h *httpRegistryAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
