// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder_AppliesDefaults verifies that every unset field
// receives its default.
func TestBuild_EmptyBuilder_AppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.False(t, cfg.App.DisableAuth)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "first", TokenIssuer: "issuer"},
			Storage: Storage{DB: DB{DSN: "first.db"}},
		},
		&StructuredConfig{
			App: App{TokenSignKey: "second", DisableAuth: true},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "second", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.App.DisableAuth)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "bcrypt cost too low",
			cfg:     &StructuredConfig{App: App{PasswordHashCost: 2}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			cfg:     &StructuredConfig{App: App{PasswordHashCost: 40}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative token duration",
			cfg:     &StructuredConfig{App: App{TokenDuration: -time.Second}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			cfg:     &StructuredConfig{App: App{LogLevel: "loud"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative server timeout",
			cfg:     &StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative adapter timeout",
			cfg:     &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestBuilder_FullChain verifies the priority order short env < env < flags < JSON.
func TestBuilder_FullChain(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PORT":               "4000",
		"JWT_SECRET":         "short-env-key",
		"DATABASE_URL":       "short.db",
		"APP_TOKEN_SIGN_KEY": "env-key",
		"APP_TOKEN_ISSUER":   "env-issuer",
		"CONFIG":             "",
	})
	jsonPath := writeTempFile(t, `{"app": {"token_issuer": "json-issuer"}}`)

	cfg, err := newConfigBuilder().
		withShortEnv().
		withEnv().
		withFlags([]string{"-token-sign-key", "flag-key", "-c", jsonPath}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Server.HTTPAddress)
	assert.Equal(t, "short.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}

func TestBuilder_WithJSON_MissingFile(t *testing.T) {
	clearShortEnv(t)
	t.Setenv("CONFIG", "")

	_, err := newConfigBuilder().
		withFlags([]string{"-c", "/definitely/not/here.json"}).
		withJSON().
		build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestBuilder_WithFlags_ParseError(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-unknown-flag"}).build()
	assert.Error(t, err)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	clearShortEnv(t)
	setEnvVars(t, map[string]string{
		"CONFIG":                  "",
		"ADAPTER_ADDRESS":         "http://registry:3000",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
		"ADAPTER_TOKEN":           "abc",
	})

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://registry:3000", cfg.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "abc", cfg.Token)
}
