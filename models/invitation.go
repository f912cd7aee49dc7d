package models

import "gorm.io/gorm"

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected" // status slot only; no reject operation is exposed
)

// An Invitation asks a non-member to join a group. Status moves
// pending→accepted (or pending→rejected) exactly once and is terminal
// after that.
type Invitation struct {
	gorm.Model
	GroupID   uint   `gorm:"not null;index" json:"group_id"`
	Group     Group  `json:"group"`
	InviterID uint   `gorm:"not null" json:"inviter_id"`
	Inviter   User   `gorm:"foreignKey:InviterID" json:"inviter"`
	InviteeID uint   `gorm:"not null;index" json:"invitee_id"`
	Status    string `gorm:"size:16;index" json:"status"`
}
