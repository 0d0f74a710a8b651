package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/forkwell/mealvault/backend/internal/api"
	"github.com/forkwell/mealvault/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	mealPlanHandler *api.MealPlanHandler,
	imageHandler *api.ImageHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.POST("", recipeHandler.AddRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
			recipes.POST("/:id/image", imageHandler.UploadRecipeImage)
		}

		liked := protected.Group("/liked-recipes")
		{
			liked.GET("", recipeHandler.ListLikedRecipes)
			liked.GET("/:id", recipeHandler.IsLikedRecipe)
			liked.POST("/:id", recipeHandler.LikeRecipe)
			liked.DELETE("/:id", recipeHandler.UnlikeRecipe)
		}

		mealPlan := protected.Group("/meal-plan")
		{
			mealPlan.GET("", mealPlanHandler.GetMealPlan)
			mealPlan.GET("/recipes/:id", mealPlanHandler.IsRecipeInMealPlan)
			mealPlan.GET("/recipes/:id/categories", mealPlanHandler.GetCategoriesForRecipe)
			mealPlan.POST("/recipes/:id", mealPlanHandler.AddRecipeToMealPlan)
			mealPlan.DELETE("/recipes/:id/categories/:category", mealPlanHandler.RemoveRecipeFromMealPlan)
		}
	}

	return router
}
