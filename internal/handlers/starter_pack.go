package handlers

import (
	"encoding/json"
	"net/http"

	applog "cocina/internal/log"
	"cocina/internal/recipes"
)

// StarterPackTemplates lists the admin-curated entries available for import.
func StarterPackTemplates(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUserID(r); !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	templates, err := recipes.ListStarterPackTemplates(r.Context(), database)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

type starterPackRequest struct {
	IngredientIDs []uint `json:"ingredient_ids"`
	MaterialIDs   []uint `json:"material_ids"`
}

// StarterPackImport copies the selected template entries into the signed-in
// tenant's masterlists.
func StarterPackImport(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req starterPackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := recipes.ImportStarterPack(r.Context(), database, userID, req.IngredientIDs, req.MaterialIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	applog.Info(r.Context(), "starter pack imported",
		"user_id", userID,
		"ingredients", result.ImportedIngredients,
		"materials", result.ImportedMaterials,
		"skipped", result.SkippedDuplicates)
	writeJSON(w, http.StatusOK, result)
}
