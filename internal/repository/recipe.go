package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forkwell/mealvault/backend/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RecipeRepository owns all read/write access to the recipe table and its two
// relation tables (liked recipes, meal plan). Reads assemble full aggregates
// by fetching the recipe's ingredients and nutrition facts from the
// subordinate stores.
type RecipeRepository struct {
	db          *gorm.DB
	ingredients *IngredientStore
	nutrition   *NutritionStore
}

// NewRecipeRepository creates a new RecipeRepository instance
func NewRecipeRepository(db *gorm.DB, ingredients *IngredientStore, nutrition *NutritionStore) *RecipeRepository {
	return &RecipeRepository{
		db:          db,
		ingredients: ingredients,
		nutrition:   nutrition,
	}
}

// MealPlanCategory is one meal-plan category and the recipes assigned to it.
type MealPlanCategory struct {
	Name    string          `json:"name"`
	Recipes []models.Recipe `json:"recipes"`
}

// GetRecipes returns recipes with their ingredients and nutrition attached.
// A nil id list returns every recipe; otherwise exactly the recipes whose id
// is in the list. Duplicate input ids do not duplicate output rows and
// unmatched ids are silently omitted.
func (r *RecipeRepository) GetRecipes(ctx context.Context, ids []int64) ([]models.Recipe, error) {
	query := r.db.WithContext(ctx)
	if ids != nil {
		query = query.Where("id IN ?", ids)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}

	for i := range recipes {
		if err := r.attach(ctx, &recipes[i]); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// GetRecipe returns a single recipe aggregate or ErrRecipeNotFound.
func (r *RecipeRepository) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %d: %w", id, ErrRecipeNotFound)
		}
		return nil, fmt.Errorf("query recipe %d: %w", id, err)
	}
	if err := r.attach(ctx, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// AddRecipe inserts the recipe row and then persists its ingredient and
// nutrition rows. Inserting an id that already exists is a successful no-op.
//
// The child writes run concurrently and each is transactional on its own, but
// they are not atomic with the recipe row: if one fails after the row commits,
// the recipe is left with incomplete related data. Retrying AddRecipe with the
// same payload repairs it, since the row insert is idempotent and the stores
// replace their rows.
func (r *RecipeRepository) AddRecipe(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil && !isDuplicateKey(err) {
		return fmt.Errorf("insert recipe %d: %w", recipe.ID, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.ingredients.Save(gctx, recipe.Ingredients, recipe.ID)
	})
	g.Go(func() error {
		return r.nutrition.Save(gctx, recipe.Nutrition, recipe.ID)
	})
	return g.Wait()
}

// RemoveRecipe deletes the recipe row. Deleting an id with no row is a
// successful no-op.
func (r *RecipeRepository) RemoveRecipe(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", recipe.ID).Error; err != nil {
		return fmt.Errorf("delete recipe %d: %w", recipe.ID, err)
	}
	return nil
}

// GetLikedRecipes returns the full aggregates for every liked recipe id.
func (r *RecipeRepository) GetLikedRecipes(ctx context.Context) ([]models.Recipe, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.LikedRecipe{}).
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("query liked recipes: %w", err)
	}
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}
	return r.GetRecipes(ctx, ids)
}

// IsLikedRecipe reports whether the recipe id is in the liked relation.
func (r *RecipeRepository) IsLikedRecipe(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LikedRecipe{}).
		Where("recipe_id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("query liked recipe %d: %w", id, err)
	}
	return count > 0, nil
}

// AddLikedRecipe marks the recipe as liked. Liking an already liked recipe is
// a successful no-op.
func (r *RecipeRepository) AddLikedRecipe(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Create(&models.LikedRecipe{RecipeID: id}).Error
	if err != nil && !isDuplicateKey(err) {
		return fmt.Errorf("insert liked recipe %d: %w", id, err)
	}
	return nil
}

// RemoveLikedRecipe removes the like. Removing an absent like is a successful
// no-op.
func (r *RecipeRepository) RemoveLikedRecipe(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.LikedRecipe{}, "recipe_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete liked recipe %d: %w", id, err)
	}
	return nil
}

// GetRecipesInMealPlan returns the meal plan grouped by category, ordered by
// category name. The (category, recipe id) pairs are read in category order,
// folded into per-category id lists preserving the read order, and each list
// is resolved to full aggregates through the same join GetRecipes uses.
// Entries whose recipe row no longer exists are omitted.
func (r *RecipeRepository) GetRecipesInMealPlan(ctx context.Context) ([]MealPlanCategory, error) {
	var entries []models.MealPlanEntry
	if err := r.db.WithContext(ctx).
		Order("category_name").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("query meal plan: %w", err)
	}

	var categories []MealPlanCategory
	idsByCategory := make(map[string][]int64)
	for _, entry := range entries {
		if _, seen := idsByCategory[entry.CategoryName]; !seen {
			categories = append(categories, MealPlanCategory{Name: entry.CategoryName})
		}
		idsByCategory[entry.CategoryName] = append(idsByCategory[entry.CategoryName], entry.RecipeID)
	}

	for i := range categories {
		ids := idsByCategory[categories[i].Name]
		recipes, err := r.GetRecipes(ctx, ids)
		if err != nil {
			return nil, err
		}

		byID := make(map[int64]models.Recipe, len(recipes))
		for _, recipe := range recipes {
			byID[recipe.ID] = recipe
		}
		ordered := make([]models.Recipe, 0, len(ids))
		for _, id := range ids {
			if recipe, ok := byID[id]; ok {
				ordered = append(ordered, recipe)
			}
		}
		categories[i].Recipes = ordered
	}
	return categories, nil
}

// GetCategoryNamesForRecipeInMealPlan returns every category the recipe id
// appears under.
func (r *RecipeRepository) GetCategoryNamesForRecipeInMealPlan(ctx context.Context, id int64) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.MealPlanEntry{}).
		Where("recipe_id = ?", id).
		Order("category_name").
		Pluck("category_name", &names).Error; err != nil {
		return nil, fmt.Errorf("query meal plan categories for recipe %d: %w", id, err)
	}
	return names, nil
}

// IsRecipeInMealPlan reports whether the recipe id appears in the meal plan
// under any category.
func (r *RecipeRepository) IsRecipeInMealPlan(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MealPlanEntry{}).
		Where("recipe_id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("query meal plan for recipe %d: %w", id, err)
	}
	return count > 0, nil
}

// AddRecipeToMealPlan assigns the recipe to every given category in one
// all-or-nothing transaction. A category the recipe already sits under is
// skipped; any other failure rolls back the whole batch.
func (r *RecipeRepository) AddRecipeToMealPlan(ctx context.Context, id int64, categoryNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, name := range categoryNames {
			// A rolled-back savepoint keeps the surrounding transaction
			// usable on dialects that abort it after a failed statement.
			savepoint := fmt.Sprintf("meal_plan_%d", i)
			if err := tx.SavePoint(savepoint).Error; err != nil {
				return fmt.Errorf("savepoint for category %q: %w", name, err)
			}

			err := tx.Create(&models.MealPlanEntry{RecipeID: id, CategoryName: name}).Error
			if isDuplicateKey(err) {
				if err := tx.RollbackTo(savepoint).Error; err != nil {
					return fmt.Errorf("rollback savepoint for category %q: %w", name, err)
				}
				continue
			}
			if err != nil {
				return fmt.Errorf("add recipe %d to category %q: %w", id, name, err)
			}
		}
		return nil
	})
}

// RemoveRecipeFromMealPlan removes the recipe from the category. Removing an
// absent assignment is a successful no-op.
func (r *RecipeRepository) RemoveRecipeFromMealPlan(ctx context.Context, id int64, categoryName string) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.MealPlanEntry{}, "recipe_id = ? AND category_name = ?", id, categoryName).Error; err != nil {
		return fmt.Errorf("remove recipe %d from category %q: %w", id, categoryName, err)
	}
	return nil
}

// SetRecipeImageURL updates the stored image URL for the recipe.
func (r *RecipeRepository) SetRecipeImageURL(ctx context.Context, id int64, url string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Update("image_url", url)
	if result.Error != nil {
		return fmt.Errorf("update image for recipe %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe %d: %w", id, ErrRecipeNotFound)
	}
	return nil
}

// attach loads the recipe's ingredients and nutrition from the subordinate
// stores. Both stores are queried per recipe; the expected data volumes do
// not warrant batching.
func (r *RecipeRepository) attach(ctx context.Context, recipe *models.Recipe) error {
	ingredients, err := r.ingredients.ListByRecipe(ctx, recipe.ID)
	if err != nil {
		return err
	}
	nutrition, err := r.nutrition.ListByRecipe(ctx, recipe.ID)
	if err != nil {
		return err
	}
	recipe.Ingredients = ingredients
	recipe.Nutrition = nutrition
	return nil
}
