package services

import (
	"errors"
	"time"

	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type GroupService struct{ db *gorm.DB }

func NewGroupService(db *gorm.DB) *GroupService { return &GroupService{db: db} }

// GroupResponse adds the participant count the client shows on group
// cards.
type GroupResponse struct {
	models.Group
	Participants int    `json:"participants"`
	Status       string `json:"status"`
}

// Create makes the founding user the leader and sole member.
func (s *GroupService) Create(userID uint, name, description string) (*GroupResponse, error) {
	if name == "" {
		return nil, apperrors.Validation("group name is required")
	}

	group := &models.Group{
		Name:        name,
		Description: description,
		LeaderID:    userID,
		CreatedDate: time.Now(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return apperrors.IO("failed to create group", err)
		}
		if err := tx.Create(&models.UserGroup{UserID: userID, GroupID: group.ID}).Error; err != nil {
			return apperrors.IO("failed to add leader to group", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(group.ID)
}

func (s *GroupService) Get(groupID uint) (*GroupResponse, error) {
	var group models.Group
	err := s.db.
		Preload("Users").
		First(&group, groupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("group %d not found", groupID)
		}
		return nil, apperrors.IO("failed to load group", err)
	}
	return &GroupResponse{Group: group, Participants: len(group.Users), Status: "active"}, nil
}

// ListForUser returns every group the user belongs to, roster included.
func (s *GroupService) ListForUser(userID uint) ([]GroupResponse, error) {
	var groups []models.Group
	err := s.db.
		Preload("Users").
		Joins("JOIN user_groups ON user_groups.group_id = groups.id").
		Where("user_groups.user_id = ?", userID).
		Order("groups.created_date DESC").
		Find(&groups).Error
	if err != nil {
		return nil, apperrors.IO("failed to list groups", err)
	}

	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupResponse{Group: g, Participants: len(g.Users), Status: "active"})
	}
	return out, nil
}

// IsMember checks the join table directly; other services use this to
// gate group-scoped operations.
func (s *GroupService) IsMember(userID, groupID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserGroup{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.IO("failed to check membership", err)
	}
	return count > 0, nil
}

// MemberIDs lists the user ids of a group, for event fan-out.
func (s *GroupService) MemberIDs(groupID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.UserGroup{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, apperrors.IO("failed to list group members", err)
	}
	return ids, nil
}
