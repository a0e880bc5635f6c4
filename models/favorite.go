package models

import (
    "time"
)

// A recipe a user marked as favorite, tagged with its source like MealEntry.
type Favorite struct {
    ID        uint `gorm:"primarykey"`
    CreatedAt time.Time
    UpdatedAt time.Time

    UserID   uint   `gorm:"uniqueIndex:idx_fav_user_recipe;not null"`
    RecipeID string `gorm:"uniqueIndex:idx_fav_user_recipe;not null"`
    Source   string `gorm:"not null"`
}
