package services

import (
	"fmt"
	"strconv"
	"testing"

	"platebook/config"
	"platebook/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps config.DB for a per-test in-memory database and restores
// it afterwards. The DSN is keyed by test name so tests do not share state.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Instruction{},
		&models.MealEntry{},
		&models.Favorite{},
		&models.LastViewed{},
		&models.FamilyRecipe{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		config.DB = prev
	})
}

func createAuthoredRecipe(t *testing.T, userID uint) string {
	t.Helper()

	recipeSvc := NewRecipeService()
	recipe, err := recipeSvc.Create(userID, NewRecipeInput{
		Title:          "Shakshuka",
		ReadyInMinutes: 30,
		Servings:       2,
		Vegetarian:     true,
		Ingredients: []IngredientInput{
			{Name: "tomato", Quantity: 4, Unit: "piece"},
			{Name: "egg", Quantity: 2, Unit: "piece"},
		},
		Instructions: []string{
			"Simmer the tomatoes",
			"Crack in the eggs",
			"Cover until set",
		},
	})
	if err != nil {
		t.Fatalf("failed to create authored recipe: %v", err)
	}
	return strconv.FormatUint(uint64(recipe.ID), 10)
}
