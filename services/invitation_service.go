package services

import (
	"errors"

	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type InvitationService struct {
	db       *gorm.DB
	groupSvc *GroupService
}

func NewInvitationService(db *gorm.DB, gs *GroupService) *InvitationService {
	return &InvitationService{db: db, groupSvc: gs}
}

// Invite creates a pending invitation. The inviter must be a member;
// the invitee must exist, must not already be a member, and must not
// already hold a pending invitation for this group.
func (s *InvitationService) Invite(inviterID, groupID uint, inviteeUsername string) (*models.Invitation, error) {
	if inviteeUsername == "" {
		return nil, apperrors.Validation("username is required")
	}

	member, err := s.groupSvc.IsMember(inviterID, groupID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.Authorization("only group members can invite")
	}

	var invitee models.User
	if err := s.db.Where("username = ?", inviteeUsername).First(&invitee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user %q not found", inviteeUsername)
		}
		return nil, apperrors.IO("failed to look up user", err)
	}

	alreadyMember, err := s.groupSvc.IsMember(invitee.ID, groupID)
	if err != nil {
		return nil, err
	}
	if alreadyMember {
		return nil, apperrors.Conflict("user %q is already a member", inviteeUsername)
	}

	var pending int64
	err = s.db.Model(&models.Invitation{}).
		Where("group_id = ? AND invitee_id = ? AND status = ?", groupID, invitee.ID, models.InvitationPending).
		Count(&pending).Error
	if err != nil {
		return nil, apperrors.IO("failed to check pending invitations", err)
	}
	if pending > 0 {
		return nil, apperrors.Conflict("user %q already has a pending invitation", inviteeUsername)
	}

	inv := &models.Invitation{
		GroupID:   groupID,
		InviterID: inviterID,
		InviteeID: invitee.ID,
		Status:    models.InvitationPending,
	}
	if err := s.db.Create(inv).Error; err != nil {
		return nil, apperrors.IO("failed to create invitation", err)
	}

	if err := s.db.Preload("Group").Preload("Inviter").First(inv, inv.ID).Error; err != nil {
		return nil, apperrors.IO("failed to reload invitation", err)
	}
	return inv, nil
}

// ListPending returns the acting user's open invitations with group
// and inviter preloaded, matching the client's invitation cards.
func (s *InvitationService) ListPending(userID uint) ([]models.Invitation, error) {
	var invs []models.Invitation
	err := s.db.
		Preload("Group").
		Preload("Group.Users").
		Preload("Inviter").
		Where("invitee_id = ? AND status = ?", userID, models.InvitationPending).
		Order("created_at DESC").
		Find(&invs).Error
	if err != nil {
		return nil, apperrors.IO("failed to list invitations", err)
	}
	return invs, nil
}

// Accept transitions pending→accepted and adds the invitee to the
// group's member set, atomically. The status flip is a conditional
// UPDATE so two concurrent accepts cannot both succeed: the loser sees
// zero affected rows and gets a Conflict.
func (s *InvitationService) Accept(actingUserID, invitationID uint) error {
	var inv models.Invitation
	if err := s.db.First(&inv, invitationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("invitation %d not found", invitationID)
		}
		return apperrors.IO("failed to load invitation", err)
	}
	if inv.InviteeID != actingUserID {
		return apperrors.Authorization("only the invitee can accept this invitation")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invitation{}).
			Where("id = ? AND status = ?", invitationID, models.InvitationPending).
			Update("status", models.InvitationAccepted)
		if res.Error != nil {
			return apperrors.IO("failed to accept invitation", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.Conflict("invitation %d is no longer pending", invitationID)
		}
		if err := tx.Create(&models.UserGroup{UserID: actingUserID, GroupID: inv.GroupID}).Error; err != nil {
			return apperrors.IO("failed to add member to group", err)
		}
		return nil
	})
}
