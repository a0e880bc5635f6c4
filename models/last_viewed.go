package models

import (
    "time"
)

// Tracks when a user last opened a recipe. Revisits bump ViewedAt in place.
type LastViewed struct {
    ID        uint `gorm:"primarykey"`
    CreatedAt time.Time
    UpdatedAt time.Time

    UserID   uint   `gorm:"uniqueIndex:idx_lv_user_recipe;not null"`
    RecipeID string `gorm:"uniqueIndex:idx_lv_user_recipe;not null"`
    ViewedAt time.Time
}
