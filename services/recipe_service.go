// services/recipe_service.go
package services

import (
	"errors"
	"strconv"

	"platebook/config"
	"platebook/models"

	"gorm.io/gorm"
)

// RecipeService is the authored-recipe store: recipes created by users of
// this system, with their ingredients and ordered instruction steps.
type RecipeService struct{}

func NewRecipeService() *RecipeService {
	return &RecipeService{}
}

type IngredientInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type NewRecipeInput struct {
	Title          string            `json:"title"`
	Image          string            `json:"image"`
	ReadyInMinutes int               `json:"ready_in_minutes"`
	Summary        string            `json:"summary"`
	Servings       int               `json:"servings"`
	Vegan          bool              `json:"vegan"`
	Vegetarian     bool              `json:"vegetarian"`
	GlutenFree     bool              `json:"is_gluten_free"`
	Ingredients    []IngredientInput `json:"ingredients"`
	Instructions   []string          `json:"instructions"`
}

// Create inserts the recipe, its ingredients and its ordered instruction
// steps in one transaction, so a failed child insert cannot leave a
// half-written recipe behind.
func (s *RecipeService) Create(userID uint, in NewRecipeInput) (*models.Recipe, error) {
	if in.Title == "" || len(in.Ingredients) == 0 || len(in.Instructions) == 0 {
		return nil, ErrValidation
	}

	recipe := &models.Recipe{
		UserID:         userID,
		Title:          in.Title,
		Image:          in.Image,
		ReadyInMinutes: in.ReadyInMinutes,
		Summary:        in.Summary,
		Servings:       in.Servings,
		Vegan:          in.Vegan,
		Vegetarian:     in.Vegetarian,
		GlutenFree:     in.GlutenFree,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for _, ing := range in.Ingredients {
			row := models.Ingredient{
				RecipeID: recipe.ID,
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for i, step := range in.Instructions {
			row := models.Instruction{
				RecipeID:  recipe.ID,
				StepOrder: i,
				Text:      step,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Exists reports whether the id belongs to a locally authored recipe. The
// numeric id space is shared with the external provider, so every collection
// write runs this check first.
func (s *RecipeService) Exists(recipeID string) bool {
	if _, err := strconv.ParseUint(recipeID, 10, 64); err != nil {
		return false
	}
	var count int64
	config.DB.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count)
	return count > 0
}

// Classify re-derives the source tag from the store on every call; it is
// never cached on collection rows.
func (s *RecipeService) Classify(recipeID string) string {
	if s.Exists(recipeID) {
		return models.SourceAuthored
	}
	return models.SourceExternal
}

func (s *RecipeService) get(recipeID string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.Where("id = ?", recipeID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func preview(r *models.Recipe) RecipePreview {
	return RecipePreview{
		ID:             strconv.FormatUint(uint64(r.ID), 10),
		Title:          r.Title,
		ReadyInMinutes: r.ReadyInMinutes,
		Image:          r.Image,
		Popularity:     0,
		Vegan:          r.Vegan,
		Vegetarian:     r.Vegetarian,
		GlutenFree:     r.GlutenFree,
	}
}

func (s *RecipeService) Preview(recipeID string) (*RecipePreview, error) {
	recipe, err := s.get(recipeID)
	if err != nil {
		return nil, err
	}
	p := preview(recipe)
	return &p, nil
}

// FullInformation returns the recipe with its ingredients and instruction
// steps in stored order.
func (s *RecipeService) FullInformation(recipeID string) (*RecipeInformation, error) {
	recipe, err := s.get(recipeID)
	if err != nil {
		return nil, err
	}

	var ingredients []models.Ingredient
	if err := config.DB.Where("recipe_id = ?", recipe.ID).Order("id ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	var steps []models.Instruction
	if err := config.DB.Where("recipe_id = ?", recipe.ID).Order("step_order ASC").Find(&steps).Error; err != nil {
		return nil, err
	}

	info := RecipeInformation{
		RecipePreview: preview(recipe),
		Servings:      recipe.Servings,
		Summary:       recipe.Summary,
	}
	for _, ing := range ingredients {
		info.Ingredients = append(info.Ingredients, IngredientInfo{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	for _, step := range steps {
		info.Instructions = append(info.Instructions, step.Text)
	}
	return &info, nil
}

// PreviewsByUser lists previews of every recipe the user authored.
func (s *RecipeService) PreviewsByUser(userID uint) ([]RecipePreview, error) {
	var recipes []models.Recipe
	err := config.DB.Where("user_id = ?", userID).Order("id ASC").Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	out := make([]RecipePreview, 0, len(recipes))
	for i := range recipes {
		out = append(out, preview(&recipes[i]))
	}
	return out, nil
}
