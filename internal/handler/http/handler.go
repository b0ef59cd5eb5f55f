// Package http implements the inbound HTTP transport: the chi router, the
// request middlewares (trace id, logging, gzip, auth), and the JSON handlers
// for the account and ledger operations.
package http

import (
	"spendbook/internal/logger"
	"spendbook/internal/service"
)

// Handler holds the dependencies shared by every HTTP endpoint.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs the transport handler over the given services.
func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   log.GetChildLogger(),
	}
}
