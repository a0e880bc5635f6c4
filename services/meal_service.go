// services/meal_service.go
package services

import (
	"encoding/json"
	"errors"

	"platebook/config"
	"platebook/models"

	"gorm.io/gorm"
)

// MealService owns the ordered set of recipes a user is actively cooking,
// each tagged with a source and an opaque progress checkpoint. Order is row
// order (ascending id); Reorder reestablishes it by reinsertion sequence.
type MealService struct {
	recipes *RecipeService
}

func NewMealService(recipes *RecipeService) *MealService {
	return &MealService{recipes: recipes}
}

// MealRecipe is one meal-list entry as returned to callers. Authored entries
// carry the full recipe; external entries are id+progress placeholders whose
// descriptive data the caller fetches through the resolver, so the provider
// is not hit twice.
type MealRecipe struct {
	RecipeID string             `json:"id"`
	Source   string             `json:"source"`
	Progress json.RawMessage    `json:"recipe_progress"`
	Recipe   *RecipeInformation `json:"recipe,omitempty"`
}

// Add inserts a new entry with no progress. The source is re-derived from
// the authored store on every call. The empty-id guard mirrors long-standing
// caller behavior and is not a validated contract.
func (s *MealService) Add(userID uint, recipeID string) error {
	if recipeID == "" {
		return nil
	}

	var count int64
	err := config.DB.Model(&models.MealEntry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEntry
	}

	entry := models.MealEntry{
		UserID:   userID,
		RecipeID: recipeID,
		Source:   s.recipes.Classify(recipeID),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		// two concurrent adds can both pass the count check; the unique
		// index settles it
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return err
	}
	return nil
}

func (s *MealService) Remove(userID uint, recipeID string) error {
	res := config.DB.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.MealEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder replaces the user's entries with the supplied permutation,
// carrying each entry's progress over. The whole delete-then-reinsert runs
// in one transaction: an id that was not in the meal before the call rolls
// everything back and returns ErrUnknownRecipe.
func (s *MealService) Reorder(userID uint, orderedRecipeIDs []string) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var entries []models.MealEntry
		if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
			return err
		}
		byRecipe := make(map[string]models.MealEntry, len(entries))
		for _, e := range entries {
			byRecipe[e.RecipeID] = e
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.MealEntry{}).Error; err != nil {
			return err
		}

		for _, recipeID := range orderedRecipeIDs {
			prev, ok := byRecipe[recipeID]
			if !ok {
				return ErrUnknownRecipe
			}
			entry := models.MealEntry{
				UserID:   userID,
				RecipeID: recipeID,
				Source:   prev.Source,
				Progress: prev.Progress,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateProgress overwrites the checkpoint verbatim; it is never interpreted
// here.
func (s *MealService) UpdateProgress(userID uint, recipeID, progress string) error {
	res := config.DB.Model(&models.MealEntry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Update("progress", progress)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotInMeal
	}
	return nil
}

// List returns the user's entries in meal order, or the single matching
// entry when recipeID is given.
func (s *MealService) List(userID uint, recipeID string) ([]MealRecipe, error) {
	q := config.DB.Where("user_id = ?", userID).Order("id ASC")
	if recipeID != "" {
		q = q.Where("recipe_id = ?", recipeID)
	}
	var entries []models.MealEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}

	out := make([]MealRecipe, 0, len(entries))
	for _, e := range entries {
		mr := MealRecipe{
			RecipeID: e.RecipeID,
			Source:   e.Source,
			Progress: progressJSON(e.Progress),
		}
		if e.Source == models.SourceAuthored {
			info, err := s.recipes.FullInformation(e.RecipeID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				return nil, err
			}
			mr.Recipe = info
		}
		out = append(out, mr)
	}
	return out, nil
}

// progressJSON passes a stored checkpoint through untouched, or nil (JSON
// null) when absent or unparseable.
func progressJSON(progress string) json.RawMessage {
	if progress == "" || !json.Valid([]byte(progress)) {
		return nil
	}
	return json.RawMessage(progress)
}
