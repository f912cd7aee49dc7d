package services

import (
	"errors"

	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodInput struct {
	Name          string  `json:"name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	Vitamins      float64 `json:"vitamins"`
	Minerals      float64 `json:"minerals"`
	ServingSize   string  `json:"serving_size"`
	ImageURL      *string `json:"image_url"` // nil keeps the current reference; "" clears it
}

func (in *FoodInput) validate() error {
	if in.Name == "" {
		return apperrors.Validation("food name is required")
	}
	for _, v := range []float64{in.Calories, in.Protein, in.Carbohydrates, in.Fats, in.Vitamins, in.Minerals} {
		if v < 0 {
			return apperrors.Validation("nutrient values must be non-negative")
		}
	}
	return nil
}

func (s *FoodService) Create(in FoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food := &models.Food{
		Name:          in.Name,
		Calories:      in.Calories,
		Protein:       in.Protein,
		Carbohydrates: in.Carbohydrates,
		Fats:          in.Fats,
		Vitamins:      in.Vitamins,
		Minerals:      in.Minerals,
		ServingSize:   in.ServingSize,
	}
	if in.ImageURL != nil {
		food.ImageURL = *in.ImageURL
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, apperrors.IO("failed to create food", err)
	}
	return food, nil
}

func (s *FoodService) Get(foodID uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food %d not found", foodID)
		}
		return nil, apperrors.IO("failed to load food", err)
	}
	return &food, nil
}

// List returns one catalog page plus the total page count for the
// client's pager.
func (s *FoodService) List(page, limit int) ([]models.Food, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.Food{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.IO("failed to count foods", err)
	}

	var foods []models.Food
	err := s.db.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, 0, apperrors.IO("failed to list foods", err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return foods, totalPages, nil
}

func (s *FoodService) Update(foodID uint, in FoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food, err := s.Get(foodID)
	if err != nil {
		return nil, err
	}

	food.Name = in.Name
	food.Calories = in.Calories
	food.Protein = in.Protein
	food.Carbohydrates = in.Carbohydrates
	food.Fats = in.Fats
	food.Vitamins = in.Vitamins
	food.Minerals = in.Minerals
	food.ServingSize = in.ServingSize
	if in.ImageURL != nil {
		food.ImageURL = *in.ImageURL
	}

	if err := s.db.Save(food).Error; err != nil {
		return nil, apperrors.IO("failed to update food", err)
	}
	return food, nil
}

// Delete refuses to remove a food that is still referenced by a meal
// line or a shopping-list entry.
func (s *FoodService) Delete(foodID uint) error {
	if _, err := s.Get(foodID); err != nil {
		return err
	}

	var refs int64
	if err := s.db.Model(&models.MealFood{}).Where("food_id = ?", foodID).Count(&refs).Error; err != nil {
		return apperrors.IO("failed to check meal references", err)
	}
	if refs > 0 {
		return apperrors.Conflict("food %d is used by %d meal line(s)", foodID, refs)
	}
	if err := s.db.Model(&models.ShoppingListItem{}).Where("food_id = ?", foodID).Count(&refs).Error; err != nil {
		return apperrors.IO("failed to check shopping-list references", err)
	}
	if refs > 0 {
		return apperrors.Conflict("food %d is on %d shopping list(s)", foodID, refs)
	}

	if err := s.db.Delete(&models.Food{}, foodID).Error; err != nil {
		return apperrors.IO("failed to delete food", err)
	}
	return nil
}
