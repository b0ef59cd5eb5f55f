package http

import (
	"net/http"

	"spendbook/internal/logger"
)

// Version handles GET /api/version with the plain-text server version.
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(h.services.Version(r.Context()))); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing version response")
	}
}
