package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"cocina/internal/pantry"
)

// Suppliers dispatches /app/api/suppliers and /app/api/suppliers/{id}.
func Suppliers(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/app/api/suppliers"), "/")
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			items, err := pantry.ListSuppliers(r.Context(), database, userID)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, items)
		case http.MethodPost:
			var input pantry.SupplierInput
			if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
				writeJSONError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			item, err := pantry.CreateSupplier(r.Context(), database, userID, input)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, item)
		default:
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	id, ok := parseResourceID(rest)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var input pantry.SupplierInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		item, err := pantry.UpdateSupplier(r.Context(), database, userID, id, input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	case http.MethodDelete:
		if err := pantry.DeleteSupplier(r.Context(), database, userID, id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
