package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"cocina/internal/costing"
	applog "cocina/internal/log"
	"cocina/internal/pantry"
	"cocina/internal/recipes"
)

// writeServiceError maps domain errors onto HTTP statuses. Access denials on
// shared recipes are reported as not found so the catalog does not leak which
// recipes exist.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pantry.ErrDuplicateName):
		writeJSONError(w, http.StatusConflict, "an entry with this name already exists")
	case errors.Is(err, pantry.ErrEmptyName), errors.Is(err, recipes.ErrEmptyName):
		writeJSONError(w, http.StatusBadRequest, "name is required")
	case errors.Is(err, costing.ErrInvalidQuantity),
		errors.Is(err, costing.ErrInvalidCountBasedInput),
		errors.Is(err, costing.ErrInvalidUnitPrice):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, recipes.ErrAccessDenied), errors.Is(err, gorm.ErrRecordNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	default:
		applog.Error(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
