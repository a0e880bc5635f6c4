package services

import (
	"errors"

	"platebook/config"
	"platebook/models"

	"gorm.io/gorm"
)

type FamilyRecipeInput struct {
	RecipeID     string `json:"recipeId"`
	FamilyMember string `json:"familyMember"`
	Relation     string `json:"relation"`
	Inventor     string `json:"inventor"`
	BestEvent    string `json:"bestEvent"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url"`
}

func AddFamilyRecipe(userID uint, in FamilyRecipeInput) (*models.FamilyRecipe, error) {
	recipe := models.FamilyRecipe{
		UserID:       userID,
		RecipeID:     in.RecipeID,
		FamilyMember: in.FamilyMember,
		Relation:     in.Relation,
		Inventor:     in.Inventor,
		BestEvent:    in.BestEvent,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		ImageURL:     in.ImageURL,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListFamilyRecipes returns the user's family recipes, newest first.
func ListFamilyRecipes(userID uint) ([]models.FamilyRecipe, error) {
	var recipes []models.FamilyRecipe
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func GetFamilyRecipe(userID uint, id string) (*models.FamilyRecipe, error) {
	var recipe models.FamilyRecipe
	err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}
