package http

import (
	"encoding/json"
	"net/http"

	"spendbook/internal/logger"
	"spendbook/internal/utils"
	"spendbook/models"
)

// AddBudget handles POST /api/user/add-budget. Requires authentication;
// responds with the updated budget list in insertion order.
func (h *Handler) AddBudget(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, msgNotAuthorized, http.StatusUnauthorized)
		return
	}

	var request models.AddBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("malformed add-budget payload")
		http.Error(w, "invalid add-budget request", http.StatusBadRequest)
		return
	}

	budget, err := h.services.AddBudget(r.Context(), userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, budget, http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing add-budget response")
	}
}
