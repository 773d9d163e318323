// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view used by cmd/client.
type ClientConfig struct {
	// HTTPAddress is the base URL of the registry API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is an optional session token for the animal routes.
	Token string
}

// GetClientConfig builds a client-specific config view from environment
// variables (ADAPTER_*) and an optional JSON file named by CONFIG.
// Command-line arguments are left to the client itself.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
	}, nil
}
