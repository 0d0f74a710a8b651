package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/forkwell/mealvault/backend/internal/models"
	"github.com/forkwell/mealvault/backend/internal/repository"
	"github.com/forkwell/mealvault/backend/internal/testhelpers"
)

func setupRepository(t *testing.T) (*repository.RecipeRepository, *gorm.DB) {
	db := testhelpers.SetupTestDatabase(t)
	repo := repository.NewRecipeRepository(
		db,
		repository.NewIngredientStore(db),
		repository.NewNutritionStore(db),
	)
	return repo, db
}

func carbonara() models.Recipe {
	return models.Recipe{
		ID:           10,
		Title:        "Spaghetti Carbonara",
		Servings:     4,
		PrepMinutes:  10,
		CookMinutes:  20,
		ReadyMinutes: 30,
		ImageURL:     "https://example.com/carbonara.jpg",
		Ingredients: []models.Ingredient{
			{Name: "spaghetti", Amount: 400, Unit: "g"},
			{Name: "guanciale", Amount: 150, Unit: "g"},
			{Name: "egg yolks", Amount: 4, Unit: ""},
		},
		Nutrition: map[string]models.NutritionFact{
			"calories": {Nutrient: "calories", Amount: 650, Unit: "kcal"},
			"protein":  {Nutrient: "protein", Amount: 25, Unit: "g"},
		},
	}
}

func TestAddAndGetRecipe(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	recipe := carbonara()
	require.NoError(t, repo.AddRecipe(ctx, &recipe))

	got, err := repo.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spaghetti Carbonara", got.Title)
	assert.Equal(t, 4, got.Servings)
	assert.Equal(t, 30, got.ReadyMinutes)

	require.Len(t, got.Ingredients, 3)
	assert.Equal(t, "spaghetti", got.Ingredients[0].Name)
	assert.Equal(t, "guanciale", got.Ingredients[1].Name)
	assert.Equal(t, "egg yolks", got.Ingredients[2].Name)
	assert.Equal(t, 0, got.Ingredients[0].Position)
	assert.Equal(t, 2, got.Ingredients[2].Position)

	require.Len(t, got.Nutrition, 2)
	assert.Equal(t, 650.0, got.Nutrition["calories"].Amount)
	assert.Equal(t, "g", got.Nutrition["protein"].Unit)
}

func TestGetRecipeNotFound(t *testing.T) {
	repo, _ := setupRepository(t)

	_, err := repo.GetRecipe(context.Background(), 2)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestGetRecipeWithoutRelatedData(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AddRecipe(ctx, &models.Recipe{ID: 1, Title: "Pancakes", Servings: 2}))

	got, err := repo.GetRecipe(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Title)
	assert.Equal(t, 2, got.Servings)
	assert.Empty(t, got.Ingredients)
	assert.Empty(t, got.Nutrition)

	_, err = repo.GetRecipe(ctx, 2)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestGetRecipesByIDs(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	for _, r := range []models.Recipe{
		{ID: 1, Title: "Pancakes"},
		{ID: 2, Title: "Omelette"},
		{ID: 3, Title: "Granola"},
	} {
		recipe := r
		require.NoError(t, repo.AddRecipe(ctx, &recipe))
	}

	// Duplicate input ids do not duplicate output; unmatched ids are omitted.
	recipes, err := repo.GetRecipes(ctx, []int64{1, 3, 3, 999})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	titles := []string{recipes[0].Title, recipes[1].Title}
	assert.ElementsMatch(t, []string{"Pancakes", "Granola"}, titles)

	all, err := repo.GetRecipes(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetRecipesEmptyIDSet(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	recipe := models.Recipe{ID: 1, Title: "Pancakes"}
	require.NoError(t, repo.AddRecipe(ctx, &recipe))

	recipes, err := repo.GetRecipes(ctx, []int64{})
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestAddRecipeIdempotent(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	first := carbonara()
	require.NoError(t, repo.AddRecipe(ctx, &first))

	second := carbonara()
	require.NoError(t, repo.AddRecipe(ctx, &second))

	var recipeCount int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipeCount).Error)
	assert.Equal(t, int64(1), recipeCount)

	// The child stores replace their rows, so retries do not accumulate.
	var ingredientCount int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("recipe_id = ?", first.ID).Count(&ingredientCount).Error)
	assert.Equal(t, int64(3), ingredientCount)

	var nutritionCount int64
	require.NoError(t, db.Model(&models.NutritionFact{}).Where("recipe_id = ?", first.ID).Count(&nutritionCount).Error)
	assert.Equal(t, int64(2), nutritionCount)
}

func TestRemoveRecipe(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	recipe := models.Recipe{ID: 7, Title: "Minestrone"}
	require.NoError(t, repo.AddRecipe(ctx, &recipe))
	require.NoError(t, repo.RemoveRecipe(ctx, &recipe))

	_, err := repo.GetRecipe(ctx, 7)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRemoveRecipeNonexistent(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	recipe := models.Recipe{ID: 5, Title: "Chili"}
	require.NoError(t, repo.AddRecipe(ctx, &recipe))

	require.NoError(t, repo.RemoveRecipe(ctx, &models.Recipe{ID: 404}))

	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLikedRecipeLifecycle(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	recipe := carbonara()
	require.NoError(t, repo.AddRecipe(ctx, &recipe))

	liked, err := repo.IsLikedRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, repo.AddLikedRecipe(ctx, recipe.ID))
	liked, err = repo.IsLikedRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	// A repeat like is a no-op, not an error.
	require.NoError(t, repo.AddLikedRecipe(ctx, recipe.ID))
	var count int64
	require.NoError(t, db.Model(&models.LikedRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	recipes, err := repo.GetLikedRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, recipe.ID, recipes[0].ID)
	assert.Len(t, recipes[0].Ingredients, 3)

	require.NoError(t, repo.RemoveLikedRecipe(ctx, recipe.ID))
	liked, err = repo.IsLikedRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	// Removing an absent like is also a no-op.
	require.NoError(t, repo.RemoveLikedRecipe(ctx, recipe.ID))
}

func TestGetLikedRecipesEmpty(t *testing.T) {
	repo, _ := setupRepository(t)

	recipes, err := repo.GetLikedRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestSetRecipeImageURL(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	recipe := models.Recipe{ID: 9, Title: "Ratatouille"}
	require.NoError(t, repo.AddRecipe(ctx, &recipe))

	require.NoError(t, repo.SetRecipeImageURL(ctx, 9, "https://example.com/rat.jpg"))
	got, err := repo.GetRecipe(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/rat.jpg", got.ImageURL)

	err = repo.SetRecipeImageURL(ctx, 404, "https://example.com/nope.jpg")
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}
