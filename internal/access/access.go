// Package access decides whether a viewer may see a shared recipe. The
// decision is a pure function of the recipe's sharing flags and the viewer's
// identity; callers resolve both before asking.
package access

import (
	"strings"

	"cocina/models"
)

// Viewer is the already-authenticated identity a decision is made for.
type Viewer struct {
	UserID   uint
	Email    string
	PlanType string
	Role     string
}

// CanView evaluates the sharing rules in order:
//
//  1. The owner always sees their own recipe, even when hidden.
//  2. Recipes that are not free, or not visible, are denied to everyone else.
//  3. The access type decides the rest: admin-only, everyone, plan-gated, or
//     an explicit email allowlist. Unrecognised access types deny.
func CanView(recipe *models.Recipe, viewer Viewer) bool {
	if recipe == nil {
		return false
	}

	if viewer.UserID != 0 && viewer.UserID == recipe.OwnerID {
		return true
	}

	if !recipe.IsFreeRecipe || !recipe.IsVisible {
		return false
	}

	switch recipe.AccessType {
	case models.AccessTypeAdmin:
		return strings.EqualFold(viewer.Role, models.RoleAdmin)
	case models.AccessTypeAll:
		return true
	case models.AccessTypeByPlan:
		return viewer.PlanType != "" && contains(splitList(recipe.AllowedPlans), strings.TrimSpace(viewer.PlanType))
	case models.AccessTypeSelectedUsers:
		return viewer.Email != "" && containsFold(splitList(recipe.AllowedUserEmails), viewer.Email)
	default:
		return false
	}
}

// splitList breaks a comma-joined list into trimmed, non-empty entries.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

func contains(entries []string, candidate string) bool {
	for _, entry := range entries {
		if entry == candidate {
			return true
		}
	}
	return false
}

// containsFold matches case-insensitively; email allowlists are compared in
// lower case.
func containsFold(entries []string, candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	for _, entry := range entries {
		if strings.EqualFold(entry, candidate) {
			return true
		}
	}
	return false
}
