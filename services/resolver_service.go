package services

import (
	"encoding/json"
	"strings"
)

// Response shapes shared by the authored store and the provider client.
type RecipePreview struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Image          string `json:"image"`
	Popularity     int    `json:"popularity"`
	Vegan          bool   `json:"vegan"`
	Vegetarian     bool   `json:"vegetarian"`
	GlutenFree     bool   `json:"glutenFree"`
}

type IngredientInfo struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type RecipeInformation struct {
	RecipePreview
	Servings     int              `json:"servings"`
	Summary      string           `json:"summary,omitempty"`
	Ingredients  []IngredientInfo `json:"extendedIngredients"`
	Instructions []string         `json:"instructions"`
}

// ResolverService dispatches each recipe id to the authored store or the
// external provider. The id space is shared, so the authored store is always
// consulted first.
type ResolverService struct {
	recipes  *RecipeService
	provider *SpoonacularService
}

func NewResolverService(recipes *RecipeService, provider *SpoonacularService) *ResolverService {
	return &ResolverService{recipes: recipes, provider: provider}
}

func (s *ResolverService) Preview(recipeID string) (*RecipePreview, error) {
	if s.recipes.Exists(recipeID) {
		return s.recipes.Preview(recipeID)
	}
	info, err := s.provider.Information(recipeID)
	if err != nil {
		return nil, err
	}
	return &info.RecipePreview, nil
}

// Previews resolves each id independently. A provider failure for any id
// fails the whole batch.
func (s *ResolverService) Previews(recipeIDs []string) ([]RecipePreview, error) {
	out := make([]RecipePreview, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		p, err := s.Preview(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *ResolverService) FullInformation(recipeID string) (*RecipeInformation, error) {
	if s.recipes.Exists(recipeID) {
		return s.recipes.FullInformation(recipeID)
	}
	return s.provider.Information(recipeID)
}

type instructionStep struct {
	Number      int              `json:"number"`
	Step        string           `json:"step"`
	Ingredients []stepIngredient `json:"ingredients"`
	Equipment   []interface{}    `json:"equipment"`
	Length      interface{}      `json:"length"`
}

type stepIngredient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type instructionBlock struct {
	Name  string            `json:"name"`
	Steps []instructionStep `json:"steps"`
}

// AnalyzedInstructions returns the provider's step breakdown for external
// recipes, or builds the same shape from stored steps for authored ones.
func (s *ResolverService) AnalyzedInstructions(recipeID string) (json.RawMessage, error) {
	if !s.recipes.Exists(recipeID) {
		return s.provider.AnalyzedInstructions(recipeID)
	}

	info, err := s.recipes.FullInformation(recipeID)
	if err != nil {
		return nil, err
	}

	stepIngredients := make([]stepIngredient, 0, len(info.Ingredients))
	for _, ing := range info.Ingredients {
		stepIngredients = append(stepIngredients, stepIngredient{
			ID:    strings.ToLower(strings.ReplaceAll(ing.Name, " ", "_")),
			Name:  ing.Name,
			Image: strings.ReplaceAll(ing.Name, " ", "-") + ".jpg",
		})
	}

	block := instructionBlock{Steps: []instructionStep{}}
	for i, text := range info.Instructions {
		block.Steps = append(block.Steps, instructionStep{
			Number:      i + 1,
			Step:        text,
			Ingredients: stepIngredients,
			Equipment:   []interface{}{},
		})
	}
	return json.Marshal([]instructionBlock{block})
}
