package models

import (
    "gorm.io/gorm"
)

// A recipe authored by a user of this system. External recipes live only in
// the provider and are never persisted here.
type Recipe struct {
    gorm.Model
    UserID         uint `gorm:"index;not null"`
    Title          string `gorm:"not null"`
    Image          string
    ReadyInMinutes int
    Summary        string
    Servings       int
    Vegan          bool
    Vegetarian     bool
    GlutenFree     bool
    Ingredients    []Ingredient
    Instructions   []Instruction
}

type Ingredient struct {
    gorm.Model
    RecipeID uint `gorm:"index;not null"`
    Name     string
    Quantity float64
    Unit     string
}

// One instruction step; StepOrder fixes the sequence within a recipe.
type Instruction struct {
    gorm.Model
    RecipeID  uint `gorm:"index;not null"`
    StepOrder int
    Text      string
}
