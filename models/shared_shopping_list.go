package models

import "gorm.io/gorm"

// A group-scoped projection of one personal shopping-list entry. The
// projection holds its own bought state plus who bought it; it never
// owns the referenced entry. IsBought is a pointer to keep the
// tri-state the mobile client expects (unset/false/true).
type SharedShoppingListItem struct {
	gorm.Model
	GroupID        uint             `gorm:"not null;index" json:"group_id"`
	ShoppingListID uint             `gorm:"not null;index" json:"-"`
	ShoppingList   ShoppingListItem `json:"shoppingList"`
	IsBought       *bool            `json:"is_bought"`
	BoughtByUserID *uint            `json:"bought_by_user_id"`
}
