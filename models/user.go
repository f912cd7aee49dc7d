package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Password string  `gorm:"not null" json:"-"`
	Name     string  `json:"name,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Age      int     `json:"age,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Height   float64 `json:"height,omitempty"`
}
