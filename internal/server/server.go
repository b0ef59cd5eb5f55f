// Package server owns the process lifecycle: it starts the HTTP transport
// and shuts it down gracefully on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"spendbook/internal/config"
	handler "spendbook/internal/handler/http"
	"spendbook/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal before the server is forced down.
const shutdownTimeout = 5 * time.Second

// Server runs the HTTP transport until the process receives a termination
// signal.
type Server struct {
	httpServer *HTTPServer
	logger     *logger.Logger
}

// NewServer wires the transport handler into a runnable server.
func NewServer(cfg *config.StructuredConfig, h *handler.Handler, log *logger.Logger) *Server {
	return &Server{
		httpServer: NewHTTPServer(cfg.Server, h, log),
		logger:     log.GetChildLogger(),
	}
}

// Run starts the server and blocks until a termination signal arrives or the
// listener fails. Shutdown is graceful within shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info().Str("address", s.httpServer.Address()).Msg("server started")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
