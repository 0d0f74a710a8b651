package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forkwell/mealvault/backend/internal/models"
	"github.com/forkwell/mealvault/backend/internal/repository"
)

type RecipeHandler struct {
	repo *repository.RecipeRepository
}

func NewRecipeHandler(repo *repository.RecipeRepository) *RecipeHandler {
	return &RecipeHandler{repo: repo}
}

// ListRecipes returns all recipes, or only those named by ?ids=1,2,3.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var ids []int64
	if raw := c.Query("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id: " + part})
				return
			}
			ids = append(ids, id)
		}
	}

	recipes, err := h.repo.GetRecipes(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.repo.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) AddRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if recipe.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe id is required"})
		return
	}

	if err := h.repo.AddRecipe(c.Request.Context(), &recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.repo.RemoveRecipe(c.Request.Context(), &models.Recipe{ID: id}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) ListLikedRecipes(c *gin.Context) {
	recipes, err := h.repo.GetLikedRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch liked recipes"})
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) IsLikedRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	liked, err := h.repo.IsLikedRecipe(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check liked recipe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.repo.AddLikedRecipe(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) UnlikeRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.repo.RemoveLikedRecipe(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}
