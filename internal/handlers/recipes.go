package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"cocina/internal/recipes"
)

// Recipes dispatches /app/api/recipes, /app/api/recipes/{id} and
// /app/api/recipes/{id}/cost.
func Recipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/app/api/recipes"), "/")
	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			items, err := recipes.List(r.Context(), database, userID)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, items)
		case http.MethodPost:
			var input recipes.Input
			if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
				writeJSONError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			recipe, err := recipes.Create(r.Context(), database, userID, input)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusCreated, recipe)
		default:
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	idPart, action, _ := strings.Cut(rest, "/")
	id, ok := parseResourceID(idPart)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	if action == "cost" {
		if r.Method != http.MethodGet {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		recipe, err := recipes.Get(r.Context(), database, userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, recipes.Cost(recipe))
		return
	}
	if action != "" {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		recipe, err := recipes.Get(r.Context(), database, userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	case http.MethodPut:
		var input recipes.Input
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		recipe, err := recipes.Update(r.Context(), database, userID, id, input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	case http.MethodDelete:
		if err := recipes.Delete(r.Context(), database, userID, id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
