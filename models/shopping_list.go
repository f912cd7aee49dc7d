package models

import (
	"time"

	"gorm.io/gorm"
)

// One entry in a user's personal shopping list.
type ShoppingListItem struct {
	gorm.Model
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	FoodID   uint      `gorm:"not null" json:"food_id"`
	Food     Food      `json:"food"`
	Quantity float64   `json:"quantity"` // >= 0
	Date     time.Time `json:"date"`
	IsBought bool      `json:"is_bought"`
	Note     string    `json:"note,omitempty"`
}
