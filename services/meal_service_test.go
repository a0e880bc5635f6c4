package services

import (
	"errors"
	"testing"

	"platebook/config"
	"platebook/models"
)

func mealEntryCount(t *testing.T, userID uint) int64 {
	t.Helper()
	var count int64
	if err := config.DB.Model(&models.MealEntry{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestAddClassifiesSource(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	authoredID := createAuthoredRecipe(t, 42)
	if err := mealSvc.Add(42, authoredID); err != nil {
		t.Fatalf("Add authored: %v", err)
	}
	if err := mealSvc.Add(42, "999999"); err != nil {
		t.Fatalf("Add external: %v", err)
	}

	var entries []models.MealEntry
	if err := config.DB.Where("user_id = ?", 42).Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Source != models.SourceAuthored {
		t.Errorf("authored recipe classified as %q", entries[0].Source)
	}
	if entries[1].Source != models.SourceExternal {
		t.Errorf("external recipe classified as %q", entries[1].Source)
	}
}

func TestClassificationIsStable(t *testing.T) {
	setupTestDB(t)
	recipeSvc := NewRecipeService()

	authoredID := createAuthoredRecipe(t, 1)
	for i := 0; i < 3; i++ {
		if got := recipeSvc.Classify(authoredID); got != models.SourceAuthored {
			t.Fatalf("pass %d: authored id classified as %q", i, got)
		}
		if got := recipeSvc.Classify("424242"); got != models.SourceExternal {
			t.Fatalf("pass %d: absent id classified as %q", i, got)
		}
	}
}

func TestAddEmptyRecipeIDIsNoop(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	if err := mealSvc.Add(1, ""); err != nil {
		t.Fatalf("Add with empty id returned %v", err)
	}
	if n := mealEntryCount(t, 1); n != 0 {
		t.Errorf("expected no entries, got %d", n)
	}
}

func TestDuplicateAddFails(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	if err := mealSvc.Add(1, "555"); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := mealSvc.Add(1, "555"); !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("second Add: expected ErrDuplicateEntry, got %v", err)
	}
	if n := mealEntryCount(t, 1); n != 1 {
		t.Errorf("expected exactly 1 entry, got %d", n)
	}
}

func TestAddThenRemove(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	if err := mealSvc.Add(1, "555"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := mealSvc.Remove(1, "555"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	entries, err := mealSvc.List(1, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty meal, got %d entries", len(entries))
	}
}

func TestRemoveMissingEntry(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	if err := mealSvc.Remove(1, "555"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReorderPreservesOrderAndProgress(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	for _, id := range []string{"100", "200"} {
		if err := mealSvc.Add(7, id); err != nil {
			t.Fatalf("Add %s: %v", id, err)
		}
	}
	if err := mealSvc.UpdateProgress(7, "100", "[true]"); err != nil {
		t.Fatalf("UpdateProgress 100: %v", err)
	}
	if err := mealSvc.UpdateProgress(7, "200", "[true,true]"); err != nil {
		t.Fatalf("UpdateProgress 200: %v", err)
	}

	if err := mealSvc.Reorder(7, []string{"200", "100"}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	entries, err := mealSvc.List(7, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RecipeID != "200" || entries[1].RecipeID != "100" {
		t.Errorf("order = [%s, %s], want [200, 100]", entries[0].RecipeID, entries[1].RecipeID)
	}
	if got := string(entries[0].Progress); got != "[true,true]" {
		t.Errorf("progress of 200 = %s, want [true,true]", got)
	}
	if got := string(entries[1].Progress); got != "[true]" {
		t.Errorf("progress of 100 = %s, want [true]", got)
	}
}

// An unknown id aborts the reorder and rolls the whole replace back; the
// previous list survives untouched.
func TestReorderUnknownRecipeRollsBack(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	if err := mealSvc.Add(7, "100"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := mealSvc.UpdateProgress(7, "100", "[false,true]"); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	err := mealSvc.Reorder(7, []string{"100", "999999"})
	if !errors.Is(err, ErrUnknownRecipe) {
		t.Fatalf("expected ErrUnknownRecipe, got %v", err)
	}

	entries, err := mealSvc.List(7, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].RecipeID != "100" {
		t.Fatalf("meal list changed after failed reorder: %+v", entries)
	}
	if got := string(entries[0].Progress); got != "[false,true]" {
		t.Errorf("progress lost after failed reorder: %s", got)
	}
}

func TestUpdateProgressNotInMeal(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	err := mealSvc.UpdateProgress(1, "555", "[true]")
	if !errors.Is(err, ErrNotInMeal) {
		t.Fatalf("expected ErrNotInMeal, got %v", err)
	}
	if n := mealEntryCount(t, 1); n != 0 {
		t.Errorf("UpdateProgress created %d entries", n)
	}
}

func TestExternalMealLifecycle(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	if err := mealSvc.Add(42, "555"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := mealSvc.List(42, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].RecipeID != "555" {
		t.Fatalf("List = %+v, want single entry 555", entries)
	}
	if entries[0].Progress != nil {
		t.Errorf("fresh entry has progress %s", entries[0].Progress)
	}
	if entries[0].Recipe != nil {
		t.Errorf("external entry carries recipe data")
	}

	if err := mealSvc.UpdateProgress(42, "555", "[true,false]"); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	entries, err = mealSvc.List(42, "555")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := string(entries[0].Progress); got != "[true,false]" {
		t.Errorf("progress = %s, want [true,false]", got)
	}

	if err := mealSvc.Remove(42, "555"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	entries, err = mealSvc.List(42, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty meal, got %+v", entries)
	}
}

func TestAuthoredMealEnrichment(t *testing.T) {
	setupTestDB(t)
	mealSvc := NewMealService(NewRecipeService())

	authoredID := createAuthoredRecipe(t, 42)
	if err := mealSvc.Add(42, authoredID); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := mealSvc.List(42, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	recipe := entries[0].Recipe
	if recipe == nil {
		t.Fatal("authored entry not enriched with recipe data")
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("ingredients = %d, want 2", len(recipe.Ingredients))
	}
	if len(recipe.Instructions) != 3 {
		t.Fatalf("instructions = %d, want 3", len(recipe.Instructions))
	}
	want := []string{"Simmer the tomatoes", "Crack in the eggs", "Cover until set"}
	for i, step := range want {
		if recipe.Instructions[i] != step {
			t.Errorf("instruction %d = %q, want %q", i, recipe.Instructions[i], step)
		}
	}
}
