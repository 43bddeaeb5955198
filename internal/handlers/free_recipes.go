package handlers

import (
	"net/http"
	"strings"

	applog "cocina/internal/log"
	"cocina/internal/recipes"
)

// FreeRecipes dispatches the shared catalog routes: /app/api/free-recipes,
// /app/api/free-recipes/{id} and /app/api/free-recipes/{id}/clone.
func FreeRecipes(w http.ResponseWriter, r *http.Request) {
	viewer, ok := currentViewer(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/app/api/free-recipes"), "/")
	if rest == "" {
		if r.Method != http.MethodGet {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		items, err := recipes.ListShared(r.Context(), database, viewer)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	idPart, action, _ := strings.Cut(rest, "/")
	id, ok := parseResourceID(idPart)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		recipe, err := recipes.GetShared(r.Context(), database, id, viewer)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	case "clone":
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		// The viewer must be allowed to see the recipe before copying it.
		if _, err := recipes.GetShared(r.Context(), database, id, viewer); err != nil {
			writeServiceError(w, r, err)
			return
		}
		clone, err := recipes.Clone(r.Context(), database, id, viewer.UserID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		applog.Info(r.Context(), "recipe cloned", "source_id", id, "clone_id", clone.ID, "user_id", viewer.UserID)
		writeJSON(w, http.StatusCreated, clone)
	default:
		writeJSONError(w, http.StatusNotFound, "not found")
	}
}
