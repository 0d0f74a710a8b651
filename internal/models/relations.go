package models

import "time"

// LikedRecipe marks a recipe as liked. The recipe id is the primary key, so
// membership is a set: liking twice hits the key and is treated as a no-op.
// No foreign key to recipes; a like may outlive the recipe row.
type LikedRecipe struct {
	RecipeID  int64     `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikedRecipe) TableName() string {
	return "liked_recipes"
}

// MealPlanEntry assigns a recipe to a meal-plan category. One recipe may sit
// under many categories and one category holds many recipes; the composite
// primary key keeps each pairing unique.
type MealPlanEntry struct {
	RecipeID     int64  `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	CategoryName string `gorm:"primaryKey;size:100" json:"category_name"`
}

func (MealPlanEntry) TableName() string {
	return "meal_plan"
}
