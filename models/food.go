package models

import "gorm.io/gorm"

// A catalog entry: per-unit nutrient record for one ingredient.
type Food struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	Vitamins      float64 `json:"vitamins"`
	Minerals      float64 `json:"minerals"`
	ServingSize   string  `json:"serving_size,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
}
