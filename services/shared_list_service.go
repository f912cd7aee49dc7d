package services

import (
	"errors"

	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type SharedListService struct {
	db       *gorm.DB
	groupSvc *GroupService
	events   *GroupEventBus
}

func NewSharedListService(db *gorm.DB, gs *GroupService, events *GroupEventBus) *SharedListService {
	return &SharedListService{db: db, groupSvc: gs, events: events}
}

// Share projects one of the caller's personal entries into a group.
// The caller must own the entry and belong to the group; the same
// entry can be shared into a group only once.
func (s *SharedListService) Share(userID, shoppingListID, groupID uint) (*models.SharedShoppingListItem, error) {
	member, err := s.groupSvc.IsMember(userID, groupID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.Authorization("caller is not a member of group %d", groupID)
	}

	var entry models.ShoppingListItem
	if err := s.db.First(&entry, shoppingListID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("shopping-list item %d not found", shoppingListID)
		}
		return nil, apperrors.IO("failed to load shopping-list item", err)
	}
	if entry.UserID != userID {
		return nil, apperrors.Authorization("caller does not own shopping-list item %d", shoppingListID)
	}

	var dup int64
	err = s.db.Model(&models.SharedShoppingListItem{}).
		Where("group_id = ? AND shopping_list_id = ?", groupID, shoppingListID).
		Count(&dup).Error
	if err != nil {
		return nil, apperrors.IO("failed to check existing shares", err)
	}
	if dup > 0 {
		return nil, apperrors.Conflict("item %d is already shared with group %d", shoppingListID, groupID)
	}

	notBought := false
	shared := &models.SharedShoppingListItem{
		GroupID:        groupID,
		ShoppingListID: shoppingListID,
		IsBought:       &notBought,
	}
	if err := s.db.Create(shared).Error; err != nil {
		return nil, apperrors.IO("failed to share shopping-list item", err)
	}

	if err := s.db.Preload("ShoppingList").Preload("ShoppingList.Food").First(shared, shared.ID).Error; err != nil {
		return nil, apperrors.IO("failed to reload shared item", err)
	}

	s.events.Emit(groupID, GroupEvent{
		Kind:    EventListShared,
		GroupID: groupID,
		UserID:  userID,
		Payload: shared,
	})
	return shared, nil
}

// MarkAsBought flips a shared entry to bought and records who bought
// it. The flip is a compare-and-set guarded on is_bought = false, so a
// second call — concurrent or not — gets a Conflict instead of
// silently overwriting bought_by_user_id.
func (s *SharedListService) MarkAsBought(actingUserID, sharedID uint) error {
	var shared models.SharedShoppingListItem
	if err := s.db.First(&shared, sharedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("shared item %d not found", sharedID)
		}
		return apperrors.IO("failed to load shared item", err)
	}

	member, err := s.groupSvc.IsMember(actingUserID, shared.GroupID)
	if err != nil {
		return err
	}
	if !member {
		return apperrors.Authorization("caller is not a member of group %d", shared.GroupID)
	}

	res := s.db.Model(&models.SharedShoppingListItem{}).
		Where("id = ? AND is_bought = ?", sharedID, false).
		Updates(map[string]any{
			"is_bought":         true,
			"bought_by_user_id": actingUserID,
		})
	if res.Error != nil {
		return apperrors.IO("failed to mark shared item as bought", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.Conflict("shared item %d is already bought", sharedID)
	}

	s.events.Emit(shared.GroupID, GroupEvent{
		Kind:    EventListBought,
		GroupID: shared.GroupID,
		UserID:  actingUserID,
		Payload: map[string]any{"shared_shopping_list_id": sharedID},
	})
	return nil
}

// ListForGroup returns the group's shared entries newest-first, each
// joined with the underlying personal entry and its food.
func (s *SharedListService) ListForGroup(userID, groupID uint) ([]models.SharedShoppingListItem, error) {
	member, err := s.groupSvc.IsMember(userID, groupID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.Authorization("caller is not a member of group %d", groupID)
	}

	var items []models.SharedShoppingListItem
	err = s.db.
		Preload("ShoppingList").
		Preload("ShoppingList.Food").
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.IO("failed to list shared items", err)
	}
	return items, nil
}
