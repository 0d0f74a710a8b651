package repository

import (
	"context"
	"fmt"

	"github.com/forkwell/mealvault/backend/internal/models"
	"gorm.io/gorm"
)

// NutritionStore persists the nutrition facts of a recipe.
type NutritionStore struct {
	db *gorm.DB
}

// NewNutritionStore creates a new NutritionStore instance
func NewNutritionStore(db *gorm.DB) *NutritionStore {
	return &NutritionStore{db: db}
}

// ListByRecipe returns the recipe's nutrition facts keyed by nutrient name.
func (s *NutritionStore) ListByRecipe(ctx context.Context, recipeID int64) (map[string]models.NutritionFact, error) {
	var rows []models.NutritionFact
	if err := s.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list nutrition for recipe %d: %w", recipeID, err)
	}

	facts := make(map[string]models.NutritionFact, len(rows))
	for _, row := range rows {
		facts[row.Nutrient] = row
	}
	return facts, nil
}

// Save replaces the recipe's nutrition rows with the given facts, in one
// transaction per call.
func (s *NutritionStore) Save(ctx context.Context, facts map[string]models.NutritionFact, recipeID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.NutritionFact{}).Error; err != nil {
			return fmt.Errorf("clear nutrition for recipe %d: %w", recipeID, err)
		}
		if len(facts) == 0 {
			return nil
		}

		rows := make([]models.NutritionFact, 0, len(facts))
		for nutrient, fact := range facts {
			rows = append(rows, models.NutritionFact{
				RecipeID: recipeID,
				Nutrient: nutrient,
				Amount:   fact.Amount,
				Unit:     fact.Unit,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert nutrition for recipe %d: %w", recipeID, err)
		}
		return nil
	})
}
