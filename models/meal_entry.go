package models

import (
    "time"
)

const (
    SourceAuthored = "authored"
    SourceExternal = "external"
)

// One row per (user, recipe) pair currently in the user's active meal.
// RecipeID holds either a local recipe id or a provider-assigned id; Source
// disambiguates. Progress is an opaque serialized checkpoint, stored and
// returned verbatim. Row order (ascending id) is the meal order.
//
// No soft delete: remove and reorder must free the (user_id, recipe_id)
// unique slot immediately.
type MealEntry struct {
    ID        uint `gorm:"primarykey"`
    CreatedAt time.Time
    UpdatedAt time.Time

    UserID   uint   `gorm:"uniqueIndex:idx_meal_user_recipe;not null"`
    RecipeID string `gorm:"uniqueIndex:idx_meal_user_recipe;not null"`
    Source   string `gorm:"not null"`
    Progress string
}
