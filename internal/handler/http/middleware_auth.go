package http

import (
	"context"
	"net/http"

	"spendbook/internal/logger"
	"spendbook/internal/utils"
)

const (
	msgNoToken       = "no token provided"
	msgInvalidToken  = "invalid token"
	msgNotAuthorized = "Not authorized to perform this action"
)

// auth protects the ledger endpoints. It extracts the bearer token from the
// Authorization header, validates it, and stores the authenticated account id
// in the request context under utils.UserIDCtxKey.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(header)
		if err != nil {
			log.Debug().Err(err).Msg("malformed authorization header")
			http.Error(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		token, err := h.services.ParseToken(r.Context(), tokenString)
		if err != nil {
			http.Error(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
