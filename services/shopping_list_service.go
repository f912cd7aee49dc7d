package services

import (
	"errors"
	"time"

	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type ShoppingListService struct {
	db      *gorm.DB
	foodSvc *FoodService
}

func NewShoppingListService(db *gorm.DB, fs *FoodService) *ShoppingListService {
	return &ShoppingListService{db: db, foodSvc: fs}
}

type ShoppingListItemRequest struct {
	FoodID   uint      `json:"food_id"`
	Quantity float64   `json:"quantity"`
	Date     time.Time `json:"date"`
	IsBought bool      `json:"is_bought"`
	Note     string    `json:"note"`
}

// ShoppingListPatch carries the independently patchable fields; nil
// means leave as-is.
type ShoppingListPatch struct {
	Quantity *float64   `json:"quantity"`
	Date     *time.Time `json:"date"`
	IsBought *bool      `json:"is_bought"`
	Note     *string    `json:"note"`
}

func (s *ShoppingListService) Create(userID uint, in ShoppingListItemRequest) (*models.ShoppingListItem, error) {
	items, err := s.CreateBatch(userID, []ShoppingListItemRequest{in})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// CreateBatch creates all entries or none: the whole request is
// validated against the catalog before the transaction, matching the
// client's array-shaped POST body.
func (s *ShoppingListService) CreateBatch(userID uint, ins []ShoppingListItemRequest) ([]models.ShoppingListItem, error) {
	if len(ins) == 0 {
		return nil, apperrors.Validation("at least one shopping-list item is required")
	}
	for _, in := range ins {
		if in.Quantity < 0 {
			return nil, apperrors.Validation("quantity must be non-negative")
		}
		if _, err := s.foodSvc.Get(in.FoodID); err != nil {
			return nil, err
		}
	}

	items := make([]models.ShoppingListItem, 0, len(ins))
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range ins {
			item := models.ShoppingListItem{
				UserID:   userID,
				FoodID:   in.FoodID,
				Quantity: in.Quantity,
				Date:     in.Date,
				IsBought: in.IsBought,
				Note:     in.Note,
			}
			if err := tx.Create(&item).Error; err != nil {
				return apperrors.IO("failed to create shopping-list item", err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range items {
		if err := s.db.Preload("Food").First(&items[i], items[i].ID).Error; err != nil {
			return nil, apperrors.IO("failed to reload shopping-list item", err)
		}
	}
	return items, nil
}

func (s *ShoppingListService) Get(userID, itemID uint) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := s.db.
		Preload("Food").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("shopping-list item %d not found", itemID)
		}
		return nil, apperrors.IO("failed to load shopping-list item", err)
	}
	return &item, nil
}

func (s *ShoppingListService) List(userID uint, page, limit int) ([]models.ShoppingListItem, int64, int64, error) {
	return s.list(userID, page, limit, nil, nil)
}

// ListByDateRange filters on the entry date, both bounds inclusive.
func (s *ShoppingListService) ListByDateRange(userID uint, page, limit int, from, to time.Time) ([]models.ShoppingListItem, int64, int64, error) {
	if to.Before(from) {
		return nil, 0, 0, apperrors.Validation("toDate must be on or after fromDate")
	}
	f, t := dayStart(from), dayEnd(to)
	return s.list(userID, page, limit, &f, &t)
}

func (s *ShoppingListService) list(userID uint, page, limit int, from, to *time.Time) ([]models.ShoppingListItem, int64, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	q := s.db.Model(&models.ShoppingListItem{}).Where("user_id = ?", userID)
	if from != nil && to != nil {
		q = q.Where("date >= ? AND date <= ?", *from, *to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, 0, apperrors.IO("failed to count shopping-list items", err)
	}

	var items []models.ShoppingListItem
	err := q.
		Preload("Food").
		Order("date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, 0, apperrors.IO("failed to list shopping-list items", err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return items, total, totalPages, nil
}

func (s *ShoppingListService) Update(userID, itemID uint, patch ShoppingListPatch) (*models.ShoppingListItem, error) {
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, apperrors.Validation("quantity must be non-negative")
	}

	item, err := s.Get(userID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Date != nil {
		item.Date = *patch.Date
	}
	if patch.IsBought != nil {
		item.IsBought = *patch.IsBought
	}
	if patch.Note != nil {
		item.Note = *patch.Note
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, apperrors.IO("failed to update shopping-list item", err)
	}
	return item, nil
}

// Delete removes the entry and, in the same transaction, every shared
// projection referencing it. The projection is only an overlay, so
// removing it loses nothing the group owns.
func (s *ShoppingListService) Delete(userID, itemID uint) error {
	item, err := s.Get(userID, itemID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("shopping_list_id = ?", item.ID).
			Delete(&models.SharedShoppingListItem{}).Error; err != nil {
			return apperrors.IO("failed to remove shared projections", err)
		}
		if err := tx.Delete(item).Error; err != nil {
			return apperrors.IO("failed to delete shopping-list item", err)
		}
		return nil
	})
}
