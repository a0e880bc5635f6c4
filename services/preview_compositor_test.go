package services

import (
	"encoding/json"
	"testing"
)

func TestComposeFollowsPreviewOrder(t *testing.T) {
	entries := []MealRecipe{
		{RecipeID: "2", Progress: json.RawMessage("[true]")},
		{RecipeID: "1", Progress: json.RawMessage("[false]")},
	}
	previews := []RecipePreview{
		{ID: "1", Title: "first"},
		{ID: "2", Title: "second"},
	}

	out := ComposePreviews(entries, previews)
	if len(out) != 2 {
		t.Fatalf("expected 2 merged previews, got %d", len(out))
	}
	if out[0].ID != "1" || out[1].ID != "2" {
		t.Errorf("order = [%s, %s], want previews order [1, 2]", out[0].ID, out[1].ID)
	}
	if got := string(out[0].Progress); got != "[false]" {
		t.Errorf("progress of 1 = %s", got)
	}
	if got := string(out[1].Progress); got != "[true]" {
		t.Errorf("progress of 2 = %s", got)
	}
}

func TestComposeMissingProgressIsNull(t *testing.T) {
	previews := []RecipePreview{{ID: "9", Title: "orphan"}}

	out := ComposePreviews(nil, previews)
	if len(out) != 1 {
		t.Fatalf("expected 1 merged preview, got %d", len(out))
	}
	if out[0].Progress != nil {
		t.Fatalf("progress = %s, want nil", out[0].Progress)
	}

	encoded, err := json.Marshal(out[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := decoded["recipe_progress"]; !ok || v != nil {
		t.Errorf("recipe_progress = %v, want explicit null", v)
	}
}

func TestComposeEmptyPreviews(t *testing.T) {
	entries := []MealRecipe{{RecipeID: "1"}}
	if out := ComposePreviews(entries, nil); len(out) != 0 {
		t.Errorf("expected empty result, got %+v", out)
	}
}
