package models

// Recipe is the aggregate root for everything the app stores about a dish.
// IDs come from the upstream food API the mobile client browses, so they are
// caller-supplied rather than generated by the database.
//
// Ingredients and Nutrition live in their own tables keyed by recipe id and
// are attached by the repository when a recipe is read; GORM never touches
// them directly.
type Recipe struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Servings     int    `json:"servings"`
	PrepMinutes  int    `json:"prep_minutes"`
	CookMinutes  int    `json:"cook_minutes"`
	ReadyMinutes int    `json:"ready_minutes"`
	ImageURL     string `gorm:"size:255" json:"image_url"`

	Ingredients []Ingredient             `gorm:"-" json:"ingredients"`
	Nutrition   map[string]NutritionFact `gorm:"-" json:"nutrition"`
}

// Ingredient is one line of a recipe's ingredient list. Position preserves
// the order the recipe lists them in.
type Ingredient struct {
	ID       uint    `gorm:"primarykey" json:"-"`
	RecipeID int64   `gorm:"not null;index" json:"-"`
	Position int     `gorm:"not null" json:"position"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `gorm:"size:50" json:"unit"`
}

// NutritionFact is a single nutrient value for a recipe. The composite key
// keeps one row per (recipe, nutrient).
type NutritionFact struct {
	RecipeID int64   `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Nutrient string  `gorm:"primaryKey;size:50" json:"nutrient"`
	Amount   float64 `json:"amount"`
	Unit     string  `gorm:"size:20" json:"unit"`
}
