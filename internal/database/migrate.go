package database

import (
	"fmt"

	"github.com/forkwell/mealvault/backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the schema for every persisted model.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.NutritionFact{},
		&models.LikedRecipe{},
		&models.MealPlanEntry{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
