// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-animal-registry/internal/config"
	"github.com/MKhiriev/go-animal-registry/internal/handler"
	"github.com/MKhiriev/go-animal-registry/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	// closers are released after the listener has drained.
	closers []io.Closer
	logger  *logger.Logger
}

// NewServer builds the HTTP server from the prepared handlers. Every closer is
// closed once the server has stopped, in the order given.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		closers:    closers,
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var runErr error
	select {
	case err := <-serveErr:
		// the listener died before any stop signal
		runErr = errServerFailed
		if err != nil {
			runErr = fmt.Errorf("%w: %w", errServerFailed, err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		runErr = s.Shutdown(shutdownCtx)
		<-serveErr
	}

	if err := s.closeResources(); err != nil {
		runErr = errors.Join(runErr, err)
	}

	if runErr == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}

	return runErr
}

func (s *server) closeResources() error {
	var errs []error
	for _, c := range s.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			s.logger.Err(err).Msg("error releasing server resource")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
