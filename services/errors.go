package services

import "errors"

var (
	ErrDuplicateEntry = errors.New("recipe is already in this collection")
	ErrNotInMeal      = errors.New("recipe is not in the user's meal")
	ErrUnknownRecipe  = errors.New("recipe was not in the meal before reorder")
	ErrNotFound       = errors.New("record not found")
	ErrValidation     = errors.New("missing or empty required fields")
	ErrNoResults      = errors.New("no recipes matched the search")
	ErrUserExists     = errors.New("username already exists")
)
