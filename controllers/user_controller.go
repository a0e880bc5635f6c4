package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"platebook/services"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// POST /users/recipes
// A freshly authored recipe is also placed in the creator's meal list.
func CreateRecipe(c *gin.Context) {
	var input services.NewRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	recipeSvc := services.NewRecipeService()
	recipe, err := recipeSvc.Create(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: missing or empty required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mealSvc := services.NewMealService(recipeSvc)
	if err := mealSvc.Add(userID, strconv.FormatUint(uint64(recipe.ID), 10)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe has been created successfully", "success": true})
}

// GET /users/recipes
func MyRecipes(c *gin.Context) {
	previews, err := services.NewRecipeService().PreviewsByUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previews)
}

type recipeIDInput struct {
	RecipeID string `json:"recipeId" binding:"required"`
}

// POST /users/favorites
func AddFavorite(c *gin.Context) {
	var input recipeIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favSvc := services.NewFavoriteService(services.NewRecipeService())
	if err := favSvc.Add(currentUserID(c), input.RecipeID); err != nil {
		if errors.Is(err, services.ErrDuplicateEntry) {
			c.JSON(http.StatusConflict, gin.H{"error": "Recipe is already a favorite"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "The recipe was saved as favorite"})
}

// GET /users/favorites
func GetFavorites(c *gin.Context) {
	favSvc := services.NewFavoriteService(services.NewRecipeService())
	ids, err := favSvc.List(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(ids) == 0 {
		c.JSON(http.StatusOK, []services.RecipePreview{})
		return
	}

	previews, err := newResolver().Previews(ids)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previews)
}

// DELETE /users/favorites
func RemoveFavorite(c *gin.Context) {
	var input recipeIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favSvc := services.NewFavoriteService(services.NewRecipeService())
	if err := favSvc.Remove(currentUserID(c), input.RecipeID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe is not in favorites"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The recipe was removed from favorites"})
}

// GET /users/favorites/contains?recipeId=123
func IsFavorite(c *gin.Context) {
	favSvc := services.NewFavoriteService(services.NewRecipeService())
	favorite, err := favSvc.Contains(currentUserID(c), c.Query("recipeId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": favorite})
}

// POST /users/last-viewed
func MarkLastViewed(c *gin.Context) {
	var input recipeIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewHistoryService().Touch(currentUserID(c), input.RecipeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "The recipe was saved as last viewed"})
}

// GET /users/last-viewed
func GetLastViewed(c *gin.Context) {
	ids, err := services.NewHistoryService().Recent(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(ids) == 0 {
		c.JSON(http.StatusOK, []services.RecipePreview{})
		return
	}

	previews, err := newResolver().Previews(ids)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previews)
}

// GET /users/last-viewed/contains?recipeId=123
func IsLastViewed(c *gin.Context) {
	viewed, err := services.NewHistoryService().Contains(currentUserID(c), c.Query("recipeId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isLastViewed": viewed})
}
