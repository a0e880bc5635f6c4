package services

import (
	"encoding/json"
)

// MealPreview is a recipe preview merged with the user's cooking progress.
type MealPreview struct {
	RecipePreview
	Progress json.RawMessage `json:"recipe_progress"`
}

// ComposePreviews zips meal entries with recipe previews keyed by recipe id.
// Output order follows previews, not entries; previews with no matching
// entry get a null progress field.
func ComposePreviews(entries []MealRecipe, previews []RecipePreview) []MealPreview {
	out := make([]MealPreview, 0, len(previews))
	for _, p := range previews {
		merged := MealPreview{RecipePreview: p}
		for _, e := range entries {
			if e.RecipeID == p.ID {
				merged.Progress = e.Progress
				break
			}
		}
		out = append(out, merged)
	}
	return out
}
