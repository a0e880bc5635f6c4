package routes

import (
    "platebook/controllers"
    "platebook/middlewares"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    r.Use(cors.New(cors.Config{
        AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
        AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
        AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
        AllowCredentials: true,
    }))

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
        auth.POST("/logout", middlewares.AuthMiddleware(), controllers.Logout)
    }

    // Public recipe browsing
    recipes := r.Group("/recipes")
    {
        recipes.GET("/search", controllers.SearchRecipes)
        recipes.GET("/random", controllers.RandomRecipes)
        recipes.POST("/preview", controllers.PreviewRecipes)
        recipes.GET("/:id", controllers.GetRecipe)
        recipes.GET("/:id/instructions", controllers.GetAnalyzedInstructions)
    }

    // Protected user routes
    users := r.Group("/users")
    users.Use(middlewares.AuthMiddleware())
    {
        users.POST("/recipes", controllers.CreateRecipe)
        users.GET("/recipes", controllers.MyRecipes)

        users.POST("/favorites", controllers.AddFavorite)
        users.GET("/favorites", controllers.GetFavorites)
        users.DELETE("/favorites", controllers.RemoveFavorite)
        users.GET("/favorites/contains", controllers.IsFavorite)

        users.POST("/last-viewed", controllers.MarkLastViewed)
        users.GET("/last-viewed", controllers.GetLastViewed)
        users.GET("/last-viewed/contains", controllers.IsLastViewed)

        users.POST("/family-recipes", controllers.AddFamilyRecipe)
        users.GET("/family-recipes", controllers.GetFamilyRecipes)
        users.GET("/family-recipes/:id", controllers.GetFamilyRecipe)

        users.GET("/meal", controllers.GetMyMeal)
        users.POST("/meal", controllers.AddToMyMeal)
        users.PUT("/meal", controllers.ReorderMyMeal)
        users.DELETE("/meal", controllers.RemoveFromMyMeal)
        users.PUT("/meal/progress", controllers.UpdateRecipeProgress)
        users.GET("/meal/progress/:recipeId", controllers.GetRecipeProgress)

        users.POST("/upload-image", controllers.UploadImage)
    }

    return r
}
