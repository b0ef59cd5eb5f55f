package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"spendbook/internal/config"
	handler "spendbook/internal/handler/http"
	"spendbook/internal/logger"
)

// HTTPServer wraps net/http.Server with the configured router and timeouts.
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer builds the HTTP server over the handler's router. The
// configured request timeout is enforced per request via chi's Timeout
// middleware.
func NewHTTPServer(cfg config.Server, h *handler.Handler, log *logger.Logger) *HTTPServer {
	router := h.InitRoutes()

	var httpHandler http.Handler = router
	if cfg.RequestTimeout > 0 {
		httpHandler = middleware.Timeout(cfg.RequestTimeout)(router)
	}

	return &HTTPServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: httpHandler,
		},
		logger: log.GetChildLogger(),
	}
}

// Address returns the listen address.
func (s *HTTPServer) Address() string {
	return s.server.Addr
}

// ListenAndServe starts accepting connections. Blocks until the server stops.
func (s *HTTPServer) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully, waiting for in-flight requests up to
// the context deadline.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
