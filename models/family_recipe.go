package models

import (
    "gorm.io/gorm"
)

// Free-form per-user family recipe. Not reconciled against the
// authored/external distinction; ingredients and instructions are plain text.
type FamilyRecipe struct {
    gorm.Model
    UserID       uint `gorm:"index;not null"`
    RecipeID     string
    FamilyMember string
    Relation     string
    Inventor     string
    BestEvent    string
    Ingredients  string
    Instructions string
    ImageURL     string
}
