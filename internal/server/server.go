// Package server serves the safelist over HTTP, gathering it on each request.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/qdm12/pd-safelist/internal/output"
	"github.com/qdm12/pd-safelist/internal/safelist"
)

type Settings struct {
	Address string
	RootURL string
	// Region and Format are used when the request
	// does not specify them as query parameters.
	Region safelist.Region
	Format output.Format
	Output output.Settings
}

type Server struct {
	address string
	handler http.Handler
	logger  Logger
}

func New(ctx context.Context, settings Settings, gatherer Gatherer,
	logger Logger) *Server {
	return &Server{
		address: settings.Address,
		handler: newHandler(ctx, settings, gatherer, logger),
		logger:  logger,
	}
}

func (s *Server) String() string {
	return "http server"
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) (err error) {
	const readHeaderTimeout = 5 * time.Second
	server := &http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listening: %w", err)
	}

	s.logger.Info("listening on " + listener.Addr().String())

	serveErrCh := make(chan error, 1)
	go func() {
		serveErrCh <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErrCh:
		return fmt.Errorf("serving: %w", err)
	}

	s.logger.Warn("shutting down (context canceled)")
	defer s.logger.Warn("shut down")
	const shutdownGraceDuration = 2 * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGraceDuration)
	defer cancel()
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	err = <-serveErrCh
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
