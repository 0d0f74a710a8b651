package repository

import (
	"context"
	"fmt"

	"github.com/forkwell/mealvault/backend/internal/models"
	"gorm.io/gorm"
)

// IngredientStore persists the ingredient lines of a recipe.
type IngredientStore struct {
	db *gorm.DB
}

// NewIngredientStore creates a new IngredientStore instance
func NewIngredientStore(db *gorm.DB) *IngredientStore {
	return &IngredientStore{db: db}
}

// ListByRecipe returns the recipe's ingredient lines in list order.
func (s *IngredientStore) ListByRecipe(ctx context.Context, recipeID int64) ([]models.Ingredient, error) {
	var items []models.Ingredient
	if err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("position").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list ingredients for recipe %d: %w", recipeID, err)
	}
	return items, nil
}

// Save replaces the recipe's ingredient rows with the given list, in one
// transaction per call.
func (s *IngredientStore) Save(ctx context.Context, items []models.Ingredient, recipeID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("clear ingredients for recipe %d: %w", recipeID, err)
		}
		if len(items) == 0 {
			return nil
		}

		rows := make([]models.Ingredient, len(items))
		for i, item := range items {
			rows[i] = models.Ingredient{
				RecipeID: recipeID,
				Position: i,
				Name:     item.Name,
				Amount:   item.Amount,
				Unit:     item.Unit,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert ingredients for recipe %d: %w", recipeID, err)
		}
		return nil
	})
}
