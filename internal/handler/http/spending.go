package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"spendbook/internal/logger"
	"spendbook/internal/utils"
	"spendbook/internal/validators"
	"spendbook/models"
)

const msgInvalidDeleteSpending = "invalid delete-spending request"

// AddSpending handles POST /api/user/add-spending. Requires authentication;
// responds with the updated newest-first spending list.
func (h *Handler) AddSpending(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	var request models.AddSpendingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("malformed add-spending payload")
		http.Error(w, "invalid add-spending request", http.StatusBadRequest)
		return
	}

	spending, err := h.services.AddSpending(r.Context(), userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, spending, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing add-spending response")
	}
}

// DeleteSpending handles POST /api/user/delete-spending. The entry is
// addressed by its position in the sorted list; responds with the updated
// list.
func (h *Handler) DeleteSpending(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	var request models.DeleteSpendingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("malformed delete-spending payload")
		http.Error(w, msgInvalidDeleteSpending, http.StatusBadRequest)
		return
	}

	spending, err := h.services.DeleteSpending(r.Context(), userID, request)
	if err != nil {
		// Index shape problems answer with the generic message; only the
		// out-of-range case names the field.
		if errors.Is(err, validators.ErrIndexRequired) || errors.Is(err, validators.ErrIndexInteger) {
			http.Error(w, msgInvalidDeleteSpending, http.StatusBadRequest)
			return
		}
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, spending, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing delete-spending response")
	}
}
