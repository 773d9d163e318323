// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:8081",
		"-d", "zoo.db",
		"-c", "/etc/zoo.json",
		"-token-sign-key", "key",
		"-token-issuer", "zoo",
		"-token-duration", "30m",
		"-password-hash-cost", "11",
		"-no-auth",
		"-log-level", "warn",
		"-request-timeout", "10s",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "zoo.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/zoo.json", cfg.JSONFilePath)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "zoo", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.True(t, cfg.App.DisableAuth)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.False(t, cfg.App.DisableAuth)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/tmp/c.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "ip and port", input: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{name: "localhost", input: "localhost:3000", want: "localhost:3000"},
		{name: "all interfaces", input: ":3000", want: ":3000"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
