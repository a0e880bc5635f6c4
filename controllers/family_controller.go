package controllers

import (
	"errors"
	"net/http"

	"platebook/services"

	"github.com/gin-gonic/gin"
)

// POST /users/family-recipes
func AddFamilyRecipe(c *gin.Context) {
	var input services.FamilyRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.AddFamilyRecipe(currentUserID(c), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Family recipe added successfully"})
}

// GET /users/family-recipes
func GetFamilyRecipes(c *gin.Context) {
	recipes, err := services.ListFamilyRecipes(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /users/family-recipes/:id
func GetFamilyRecipe(c *gin.Context) {
	recipe, err := services.GetFamilyRecipe(currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}
