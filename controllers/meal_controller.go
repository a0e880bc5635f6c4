package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"platebook/services"

	"github.com/gin-gonic/gin"
)

func newMealService() *services.MealService {
	return services.NewMealService(services.NewRecipeService())
}

// GET /users/meal
// Entries are enriched with previews and the per-recipe progress checkpoint.
func GetMyMeal(c *gin.Context) {
	userID := currentUserID(c)

	entries, err := newMealService().List(userID, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusOK, []services.MealPreview{})
		return
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.RecipeID)
	}

	previews, err := newResolver().Previews(ids)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.ComposePreviews(entries, previews))
}

// POST /users/meal
func AddToMyMeal(c *gin.Context) {
	var input recipeIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newMealService().Add(currentUserID(c), input.RecipeID); err != nil {
		if errors.Is(err, services.ErrDuplicateEntry) {
			c.JSON(http.StatusConflict, gin.H{"error": "Recipe is already in the meal"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The recipe was added to the meal"})
}

type ReorderInput struct {
	RecipeOrder []string `json:"recipes_order_id" binding:"required"`
}

// PUT /users/meal
func ReorderMyMeal(c *gin.Context) {
	var input ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newMealService().Reorder(currentUserID(c), input.RecipeOrder); err != nil {
		if errors.Is(err, services.ErrUnknownRecipe) {
			c.JSON(http.StatusConflict, gin.H{"error": "A supplied recipe is not in the meal; order unchanged"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The recipes were reordered"})
}

// DELETE /users/meal
func RemoveFromMyMeal(c *gin.Context) {
	var input recipeIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newMealService().Remove(currentUserID(c), input.RecipeID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found in the meal"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The recipe was removed from the meal"})
}

type ProgressInput struct {
	RecipeID string          `json:"recipeId" binding:"required"`
	Progress json.RawMessage `json:"recipe_progress"`
}

// PUT /users/meal/progress
// The checkpoint is stored verbatim; its shape is the client's business.
func UpdateRecipeProgress(c *gin.Context) {
	var input ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := newMealService().UpdateProgress(currentUserID(c), input.RecipeID, string(input.Progress))
	if err != nil {
		if errors.Is(err, services.ErrNotInMeal) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe is not in the meal"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe making progress updated"})
}

// GET /users/meal/progress/:recipeId
func GetRecipeProgress(c *gin.Context) {
	entries, err := newMealService().List(currentUserID(c), c.Param("recipeId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found in the meal"})
		return
	}
	c.JSON(http.StatusOK, entries[0])
}
