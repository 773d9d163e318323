// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Short environment variables (PORT, DATABASE_URL, JWT_SECRET)
//  2. Prefixed environment variables (APP_*, SERVER_*, STORAGE_*, ADAPTER_*)
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source receive the defaults documented on
// [StructuredConfig]. The main entry points are [GetStructuredConfig] for the
// server and [GetClientConfig] for the command-line client.
package config
