// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a small command-line client for the animal registry API.
//
// Usage:
//
//	client [-a address] [-t token] <command> [arguments]
//
// Commands:
//
//	version
//	signup <email> <password> [name]
//	login [-copy] <email> <password>
//	list
//	get <id>
//	create -name <name> -species <species> [-description <text>] [-img <url>]
//	update <id> [-name <name>] [-species <species>] [-description <text>] [-img <url>]
//	delete <id>
//
// The base URL, timeout and token also come from ADAPTER_ADDRESS,
// ADAPTER_REQUEST_TIMEOUT and ADAPTER_TOKEN. Every result is printed as JSON,
// except for version and login which print plain text.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-animal-registry/internal/adapter"
	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("animal-registry-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&cfg.HTTPAddress, "a", cfg.HTTPAddress, "registry base URL")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "session token")
	showBuild := fs.Bool("build-info", false, "print build info and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <command> [arguments]\n", fs.Name())
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "Commands: version, signup, login, list, get, create, update, delete")
	}
	_ = fs.Parse(os.Args[1:])

	if *showBuild {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	registry, err := adapter.NewHTTPRegistryAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create registry adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, registry, fs.Args(), os.Stdout); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
