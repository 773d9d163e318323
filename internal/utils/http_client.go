// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000", 30*time.Second)
//	resp, err := client.R().Get("/api/animals")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that resolves relative request URLs
// against baseURL and sends JSON by default. A zero timeout leaves resty's
// default (no timeout) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// SetBearerToken attaches token to every subsequent request as
// "Authorization: Bearer <token>". An empty token removes it.
func (c *HTTPClient) SetBearerToken(token string) {
	if token == "" {
		c.Header.Del("Authorization")
		c.Token = ""
		return
	}
	c.SetAuthToken(token)
}
