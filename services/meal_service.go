package services

import (
	"errors"
	"time"

	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db      *gorm.DB
	foodSvc *FoodService
}

func NewMealService(db *gorm.DB, fs *FoodService) *MealService {
	return &MealService{db: db, foodSvc: fs}
}

type MealFoodRequest struct {
	FoodID   uint    `json:"food_id"`
	Quantity float64 `json:"quantity"`
}

// MealResponse is the meal plus the four headline totals derived from
// its lines. Vitamins and minerals stay per-line only.
type MealResponse struct {
	models.Meal
	TotalCalories      float64 `json:"total_calories"`
	TotalProtein       float64 `json:"total_protein"`
	TotalCarbohydrates float64 `json:"total_carbohydrates"`
	TotalFats          float64 `json:"total_fats"`
}

func toResponse(m models.Meal) MealResponse {
	out := MealResponse{Meal: m}
	for _, f := range m.Foods {
		out.TotalCalories += f.Quantity * f.Calories
		out.TotalProtein += f.Quantity * f.Protein
		out.TotalCarbohydrates += f.Quantity * f.Carbohydrates
		out.TotalFats += f.Quantity * f.Fats
	}
	return out
}

func validateMealLines(lines []MealFoodRequest) error {
	if len(lines) == 0 {
		return apperrors.Validation("a meal needs at least one food")
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return apperrors.Validation("food quantity must be positive")
		}
	}
	return nil
}

// snapshotLine resolves the food in the catalog now and copies its
// nutrient vector into the line, so later catalog edits never change
// this meal.
func (s *MealService) snapshotLine(mealID uint, req MealFoodRequest) (*models.MealFood, error) {
	food, err := s.foodSvc.Get(req.FoodID)
	if err != nil {
		return nil, err
	}
	return &models.MealFood{
		MealID:        mealID,
		FoodID:        food.ID,
		FoodName:      food.Name,
		Quantity:      req.Quantity,
		Calories:      food.Calories,
		Protein:       food.Protein,
		Carbohydrates: food.Carbohydrates,
		Fats:          food.Fats,
		Vitamins:      food.Vitamins,
		Minerals:      food.Minerals,
		ServingSize:   food.ServingSize,
	}, nil
}

func (s *MealService) Create(
	userID uint,
	name, mealType string,
	date time.Time,
	lines []MealFoodRequest,
) (*MealResponse, error) {
	if name == "" {
		return nil, apperrors.Validation("meal name is required")
	}
	if !models.ValidMealType(mealType) {
		return nil, apperrors.Validation("meal_type must be breakfast, lunch, dinner or snack")
	}
	if err := validateMealLines(lines); err != nil {
		return nil, err
	}

	// resolve + snapshot before writing anything, so an unresolvable
	// food leaves no partial meal behind
	snapshots := make([]*models.MealFood, 0, len(lines))
	for _, l := range lines {
		mf, err := s.snapshotLine(0, l)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, mf)
	}

	meal := &models.Meal{UserID: userID, Name: name, MealType: mealType, Date: date}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return apperrors.IO("failed to create meal", err)
		}
		for _, mf := range snapshots {
			mf.MealID = meal.ID
			if err := tx.Create(mf).Error; err != nil {
				return apperrors.IO("failed to create meal food", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(userID, meal.ID)
}

func (s *MealService) Get(userID, mealID uint) (*MealResponse, error) {
	var meal models.Meal
	err := s.db.
		Preload("Foods").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("meal %d not found", mealID)
		}
		return nil, apperrors.IO("failed to load meal", err)
	}
	out := toResponse(meal)
	return &out, nil
}

type MealFilter struct {
	Page     int
	Limit    int
	MealType string
	From     *time.Time
	To       *time.Time
}

func (s *MealService) List(userID uint, f MealFilter) ([]MealResponse, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.MealType != "" && !models.ValidMealType(f.MealType) {
		return nil, 0, apperrors.Validation("invalid meal_type filter")
	}

	q := s.db.Model(&models.Meal{}).Where("user_id = ?", userID)
	if f.MealType != "" {
		q = q.Where("meal_type = ?", f.MealType)
	}
	if f.From != nil {
		q = q.Where("date >= ?", dayStart(*f.From))
	}
	if f.To != nil {
		// widen to the end of the day so meals logged later on the
		// to-date stay inside the window
		q = q.Where("date <= ?", dayEnd(*f.To))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.IO("failed to count meals", err)
	}

	var meals []models.Meal
	err := q.
		Preload("Foods").
		Order("date DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&meals).Error
	if err != nil {
		return nil, 0, apperrors.IO("failed to list meals", err)
	}

	out := make([]MealResponse, 0, len(meals))
	for _, m := range meals {
		out = append(out, toResponse(m))
	}
	totalPages := (total + int64(f.Limit) - 1) / int64(f.Limit)
	return out, totalPages, nil
}

// UpdateInfo patches name/type/date only; food lines and totals are
// untouched.
func (s *MealService) UpdateInfo(
	userID, mealID uint,
	name, mealType string,
	date time.Time,
) (*MealResponse, error) {
	if name == "" {
		return nil, apperrors.Validation("meal name is required")
	}
	if !models.ValidMealType(mealType) {
		return nil, apperrors.Validation("meal_type must be breakfast, lunch, dinner or snack")
	}

	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("meal %d not found", mealID)
		}
		return nil, apperrors.IO("failed to load meal", err)
	}

	meal.Name = name
	meal.MealType = mealType
	meal.Date = date
	if err := s.db.Save(&meal).Error; err != nil {
		return nil, apperrors.IO("failed to update meal", err)
	}
	return s.Get(userID, mealID)
}

// ReplaceFoods swaps the whole line set: old lines are deleted and new
// ones created with freshly resolved nutrient snapshots.
func (s *MealService) ReplaceFoods(userID, mealID uint, lines []MealFoodRequest) (*MealResponse, error) {
	if err := validateMealLines(lines); err != nil {
		return nil, err
	}

	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("meal %d not found", mealID)
		}
		return nil, apperrors.IO("failed to load meal", err)
	}

	snapshots := make([]*models.MealFood, 0, len(lines))
	for _, l := range lines {
		mf, err := s.snapshotLine(meal.ID, l)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, mf)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("meal_id = ?", meal.ID).
			Delete(&models.MealFood{}).Error; err != nil {
			return apperrors.IO("failed to clear meal foods", err)
		}
		for _, mf := range snapshots {
			if err := tx.Create(mf).Error; err != nil {
				return apperrors.IO("failed to create meal food", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(userID, mealID)
}

func (s *MealService) Delete(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("meal %d not found", mealID)
		}
		return apperrors.IO("failed to load meal", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("meal_id = ?", meal.ID).
			Delete(&models.MealFood{}).Error; err != nil {
			return apperrors.IO("failed to delete meal foods", err)
		}
		if err := tx.Delete(&meal).Error; err != nil {
			return apperrors.IO("failed to delete meal", err)
		}
		return nil
	})
}
