package models

import (
	"time"

	"gorm.io/gorm"
)

type Group struct {
	gorm.Model
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	LeaderID    uint      `gorm:"not null" json:"leader_id"`
	CreatedDate time.Time `json:"created_date"`
	Users       []User    `gorm:"many2many:user_groups" json:"users"`
}

// user_groups join row, kept explicit so membership checks can query it
// directly instead of loading full rosters.
type UserGroup struct {
	UserID  uint `gorm:"primaryKey" json:"user_id"`
	GroupID uint `gorm:"primaryKey" json:"group_id"`
}
