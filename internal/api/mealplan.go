package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkwell/mealvault/backend/internal/repository"
)

type MealPlanHandler struct {
	repo *repository.RecipeRepository
}

func NewMealPlanHandler(repo *repository.RecipeRepository) *MealPlanHandler {
	return &MealPlanHandler{repo: repo}
}

// GetMealPlan returns every category with its recipes, ordered by category
// name.
func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	categories, err := h.repo.GetRecipesInMealPlan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plan"})
		return
	}
	if categories == nil {
		categories = []repository.MealPlanCategory{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *MealPlanHandler) IsRecipeInMealPlan(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	inPlan, err := h.repo.IsRecipeInMealPlan(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check meal plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_meal_plan": inPlan})
}

func (h *MealPlanHandler) GetCategoriesForRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	names, err := h.repo.GetCategoryNamesForRecipeInMealPlan(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": names})
}

func (h *MealPlanHandler) AddRecipeToMealPlan(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.repo.AddRecipeToMealPlan(c.Request.Context(), id, req.Categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal plan"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealPlanHandler) RemoveRecipeFromMealPlan(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}
	category := c.Param("category")

	if err := h.repo.RemoveRecipeFromMealPlan(c.Request.Context(), id, category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal plan"})
		return
	}
	c.Status(http.StatusNoContent)
}
