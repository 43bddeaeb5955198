package handlers

import (
	"encoding/json"
	"net/http"

	"cocina/internal/recipes"
)

// Orders dispatches /app/api/orders.
func Orders(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		items, err := recipes.ListOrders(r.Context(), database, userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPost:
		var input recipes.OrderInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		order, err := recipes.RecordOrder(r.Context(), database, userID, input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, order)
	default:
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
