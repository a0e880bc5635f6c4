package services

import (
	"time"

	"platebook/config"
	"platebook/models"

	"gorm.io/gorm/clause"
)

// Primary listing returns only the most recently viewed recipes.
const recentViewLimit = 4

// HistoryService tracks which recipes a user viewed and when.
type HistoryService struct{}

func NewHistoryService() *HistoryService {
	return &HistoryService{}
}

// Touch records a view, bumping the timestamp in place on revisit. The
// upsert is a single statement, so concurrent views cannot create duplicate
// rows.
func (s *HistoryService) Touch(userID uint, recipeID string) error {
	if recipeID == "" {
		return nil
	}
	now := time.Now()
	row := models.LastViewed{
		UserID:   userID,
		RecipeID: recipeID,
		ViewedAt: now,
	}
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": now, "updated_at": now}),
	}).Create(&row).Error
}

// Recent returns the ids of the most recently viewed recipes, newest first.
func (s *HistoryService) Recent(userID uint) ([]string, error) {
	var rows []models.LastViewed
	err := config.DB.
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(recentViewLimit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RecipeID)
	}
	return ids, nil
}

// Contains checks the full history, not just the recent window.
func (s *HistoryService) Contains(userID uint, recipeID string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.LastViewed{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}
