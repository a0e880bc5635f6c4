package services

import (
	"errors"

	"platebook/config"
	"platebook/models"

	"gorm.io/gorm"
)

// FavoriteService keeps the per-user favorites collection, source-tagged the
// same way as meal entries.
type FavoriteService struct {
	recipes *RecipeService
}

func NewFavoriteService(recipes *RecipeService) *FavoriteService {
	return &FavoriteService{recipes: recipes}
}

func (s *FavoriteService) Add(userID uint, recipeID string) error {
	if recipeID == "" {
		return nil
	}

	var count int64
	err := config.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEntry
	}

	fav := models.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
		Source:   s.recipes.Classify(recipeID),
	}
	if err := config.DB.Create(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return err
	}
	return nil
}

// List returns the favorited recipe ids, oldest first.
func (s *FavoriteService) List(userID uint) ([]string, error) {
	var favorites []models.Favorite
	err := config.DB.Where("user_id = ?", userID).Order("id ASC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.RecipeID)
	}
	return ids, nil
}

func (s *FavoriteService) Remove(userID uint, recipeID string) error {
	res := config.DB.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FavoriteService) Contains(userID uint, recipeID string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}
