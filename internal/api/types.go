package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MealPlanRequest is the body of POST /meal-plan/recipes/:id.
type MealPlanRequest struct {
	Categories []string `json:"categories" binding:"required,min=1"`
}

// recipeID parses the :id route parameter.
func recipeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
