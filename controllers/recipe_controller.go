package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"platebook/services"

	"github.com/gin-gonic/gin"
)

func newResolver() *services.ResolverService {
	return services.NewResolverService(services.NewRecipeService(), services.NewSpoonacularService())
}

// GET /recipes/search?recipeName=pasta&cuisine=italian&diet=vegan&intolerance=gluten&number=5&sort=popularity
func SearchRecipes(c *gin.Context) {
	number, _ := strconv.Atoi(c.Query("number"))
	params := services.SearchParams{
		Query:       c.Query("recipeName"),
		Cuisine:     c.Query("cuisine"),
		Diet:        c.Query("diet"),
		Intolerance: c.Query("intolerance"),
		Number:      number,
		Sort:        c.Query("sort"),
	}

	provider := services.NewSpoonacularService()
	ids, err := provider.Search(params)
	if err != nil {
		if errors.Is(err, services.ErrNoResults) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No recipes found for the given search parameters"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// search results are provider ids; no need to consult the authored store
	previews, err := provider.Previews(ids)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previews)
}

// GET /recipes/random?number=3
func RandomRecipes(c *gin.Context) {
	number, _ := strconv.Atoi(c.Query("number"))
	previews, err := services.NewSpoonacularService().Random(number)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previews)
}

// GET /recipes/:id
func GetRecipe(c *gin.Context) {
	info, err := newResolver().FullInformation(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

type PreviewRequest struct {
	RecipeIDs []string `json:"recipes_id" binding:"required"`
}

// POST /recipes/preview  { "recipes_id": ["1", "655235"] }
func PreviewRecipes(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	previews, err := newResolver().Previews(req.RecipeIDs)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previews)
}

// GET /recipes/:id/instructions
func GetAnalyzedInstructions(c *gin.Context) {
	instructions, err := newResolver().AnalyzedInstructions(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", instructions)
}
