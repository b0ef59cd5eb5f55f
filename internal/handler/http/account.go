package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"spendbook/internal/logger"
	"spendbook/internal/store"
	"spendbook/internal/utils"
	"spendbook/models"
)

const (
	msgAccountCreated = "Successfully created a new account."
	msgDuplicateEmail = "A user with this email already existed."
)

// CreateAccount handles POST /api/user/create-account. On success the body is
// a plain-text acknowledgement and the issued bearer token travels in the
// Authorization response header.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("malformed create-account payload")
		http.Error(w, "invalid create-account request", http.StatusBadRequest)
		return
	}

	_, token, err := h.services.CreateAccount(r.Context(), request)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			http.Error(w, msgDuplicateEmail, http.StatusBadRequest)
			return
		}
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(msgAccountCreated)); err != nil {
		log.Error().Err(err).Msg("error writing create-account response")
	}
}

// SignIn handles POST /api/user/sign-in, returning the token together with
// the profile and both embedded collections.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("malformed sign-in payload")
		http.Error(w, "invalid sign-in request", http.StatusBadRequest)
		return
	}

	user, token, err := h.services.SignIn(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := models.SignInResponse{
		Token:     token.SignedString,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Spending:  user.Spending,
		Budget:    user.Budget,
	}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing sign-in response")
	}
}
