package main

import (
	"context"
	"log"

	"github.com/forkwell/mealvault/backend/config"
	"github.com/forkwell/mealvault/backend/internal/database"
	"github.com/forkwell/mealvault/backend/internal/models"
	"github.com/forkwell/mealvault/backend/internal/repository"
)

var seedRecipes = []models.Recipe{
	{
		ID:           715538,
		Title:        "Bruschetta Style Pork & Pasta",
		Servings:     5,
		PrepMinutes:  10,
		CookMinutes:  25,
		ReadyMinutes: 35,
		ImageURL:     "https://img.spoonacular.com/recipes/715538-556x370.jpg",
		Ingredients: []models.Ingredient{
			{Name: "pork tenderloin", Amount: 1.5, Unit: "lb"},
			{Name: "penne pasta", Amount: 12, Unit: "oz"},
			{Name: "cherry tomatoes", Amount: 2, Unit: "cup"},
			{Name: "fresh basil", Amount: 0.25, Unit: "cup"},
		},
		Nutrition: map[string]models.NutritionFact{
			"calories": {Nutrient: "calories", Amount: 521, Unit: "kcal"},
			"protein":  {Nutrient: "protein", Amount: 38, Unit: "g"},
			"fat":      {Nutrient: "fat", Amount: 12, Unit: "g"},
			"carbs":    {Nutrient: "carbs", Amount: 64, Unit: "g"},
		},
	},
	{
		ID:           716429,
		Title:        "Pasta with Garlic, Scallions, Cauliflower & Breadcrumbs",
		Servings:     2,
		PrepMinutes:  20,
		CookMinutes:  25,
		ReadyMinutes: 45,
		ImageURL:     "https://img.spoonacular.com/recipes/716429-556x370.jpg",
		Ingredients: []models.Ingredient{
			{Name: "pasta", Amount: 8, Unit: "oz"},
			{Name: "cauliflower florets", Amount: 2, Unit: "cup"},
			{Name: "scallions", Amount: 3, Unit: ""},
			{Name: "garlic", Amount: 2, Unit: "clove"},
		},
		Nutrition: map[string]models.NutritionFact{
			"calories": {Nutrient: "calories", Amount: 584, Unit: "kcal"},
			"protein":  {Nutrient: "protein", Amount: 19, Unit: "g"},
			"fat":      {Nutrient: "fat", Amount: 20, Unit: "g"},
			"carbs":    {Nutrient: "carbs", Amount: 84, Unit: "g"},
		},
	},
	{
		ID:           782585,
		Title:        "Cannellini Bean and Asparagus Salad with Mushrooms",
		Servings:     6,
		PrepMinutes:  15,
		CookMinutes:  15,
		ReadyMinutes: 30,
		ImageURL:     "https://img.spoonacular.com/recipes/782585-556x370.jpg",
		Ingredients: []models.Ingredient{
			{Name: "cannellini beans", Amount: 2, Unit: "cup"},
			{Name: "asparagus", Amount: 1, Unit: "lb"},
			{Name: "baby bella mushrooms", Amount: 8, Unit: "oz"},
			{Name: "lemon juice", Amount: 2, Unit: "tbsp"},
		},
		Nutrition: map[string]models.NutritionFact{
			"calories": {Nutrient: "calories", Amount: 246, Unit: "kcal"},
			"protein":  {Nutrient: "protein", Amount: 11, Unit: "g"},
			"fat":      {Nutrient: "fat", Amount: 10, Unit: "g"},
			"carbs":    {Nutrient: "carbs", Amount: 30, Unit: "g"},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewRecipeRepository(
		db,
		repository.NewIngredientStore(db),
		repository.NewNutritionStore(db),
	)

	ctx := context.Background()
	for i := range seedRecipes {
		if err := repo.AddRecipe(ctx, &seedRecipes[i]); err != nil {
			log.Fatalf("Failed to seed recipe %d: %v", seedRecipes[i].ID, err)
		}
		log.Printf("Seeded recipe %d: %s", seedRecipes[i].ID, seedRecipes[i].Title)
	}
	log.Printf("Seeded %d recipes", len(seedRecipes))
}
