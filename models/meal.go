package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal (breakfast/lunch/…)
type Meal struct {
	gorm.Model
	UserID   uint       `json:"-"` // FK → users.id
	Name     string     `json:"name"`
	MealType string     `json:"meal_type"` // breakfast|lunch|dinner|snack
	Date     time.Time  `json:"date"`
	Foods    []MealFood `json:"foods"`
}

// Each MealFood stores a nutrition snapshot taken when the line was
// added, so later catalog edits never change a persisted meal's totals.
type MealFood struct {
	gorm.Model
	MealID uint `json:"-"`

	FoodID   uint    `gorm:"not null" json:"food_id"`
	FoodName string  `json:"name"`
	Quantity float64 `json:"quantity"` // units of the food, > 0

	// per-unit snapshot
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	Vitamins      float64 `json:"vitamins"`
	Minerals      float64 `json:"minerals"`
	ServingSize   string  `json:"serving_size,omitempty"`
}

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}
