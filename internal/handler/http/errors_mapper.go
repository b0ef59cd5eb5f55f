package http

import (
	"errors"
	"net/http"

	"spendbook/internal/logger"
	"spendbook/internal/service"
	"spendbook/internal/store"
)

// writeError maps a service error to its HTTP answer. Validation failures and
// bad sign-in credentials answer 400 with the exact sentinel message; an
// unknown account on a protected route answers 401; everything else is an
// opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPassword):
		http.Error(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, store.ErrUserNotFound):
		http.Error(w, msgNotAuthorized, http.StatusUnauthorized)

	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		http.Error(w, msgInvalidToken, http.StatusUnauthorized)

	default:
		logger.FromRequest(r).Error().Err(err).Msg("internal error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
