package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanEndpoints(t *testing.T) {
	engine, token := setupTestRouter(t)

	for id, title := range map[int64]string{1: "Pancakes", 2: "Lasagna"} {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/recipes", token, testRecipeBody(id, title))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/recipes/1", token, map[string]interface{}{
		"categories": []string{"breakfast", "lunch"},
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/recipes/2", token, map[string]interface{}{
		"categories": []string{"dinner"},
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan/recipes/1/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ElementsMatch(t, []interface{}{"breakfast", "lunch"}, decodeBody(t, w)["categories"])

	w = doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan/recipes/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["in_meal_plan"])

	w = doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := decodeBody(t, w)["categories"].([]interface{})
	require.Len(t, categories, 3)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "breakfast", first["name"])

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/meal-plan/recipes/1/categories/lunch", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan/recipes/1/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"breakfast"}, decodeBody(t, w)["categories"])
}

func TestMealPlanCheckAbsentRecipe(t *testing.T) {
	engine, token := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/meal-plan/recipes/99", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["in_meal_plan"])
}

func TestMealPlanRequiresCategories(t *testing.T) {
	engine, token := setupTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/meal-plan/recipes/1", token, map[string]interface{}{
		"categories": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
