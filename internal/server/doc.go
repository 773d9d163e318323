// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the registry's HTTP server.
//
// It owns the server lifecycle: startup, signal handling, graceful draining
// of in-flight requests and release of the resources (such as the database
// pool) handed to it at construction.
package server
