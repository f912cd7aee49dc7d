package services

import (
	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type StatisticsService struct{ db *gorm.DB }

func NewStatisticsService(db *gorm.DB) *StatisticsService { return &StatisticsService{db: db} }

// FoodStatistic reconciles, per food, what the user bought against
// what their meals consumed. Derived on every request; never stored.
type FoodStatistic struct {
	ID             uint    `json:"id"` // food id
	FoodName       string  `json:"foodName"`
	TotalBought    float64 `json:"total_bought"`
	TotalUnbought  float64 `json:"total_unbought"`
	TotalUseInMeal float64 `json:"total_use_in_meal"`
	Remaining      float64 `json:"remaining"`
	NeedToBuy      float64 `json:"need_to_buy"`
}

// FoodStatistics rolls up every food that appears in the user's
// shopping history or meal history:
//
//	remaining   = max(0, total_bought - total_use_in_meal)
//	need_to_buy = max(0, total_use_in_meal - total_bought)
func (s *StatisticsService) FoodStatistics(userID uint) ([]FoodStatistic, error) {
	type boughtRow struct {
		FoodID   uint
		IsBought bool
		Total    float64
	}
	var bought []boughtRow
	err := s.db.Model(&models.ShoppingListItem{}).
		Select("food_id, is_bought, SUM(quantity) AS total").
		Where("user_id = ?", userID).
		Group("food_id, is_bought").
		Scan(&bought).Error
	if err != nil {
		return nil, apperrors.IO("failed to aggregate shopping list", err)
	}

	type usedRow struct {
		FoodID uint
		Total  float64
	}
	var used []usedRow
	err = s.db.Model(&models.MealFood{}).
		Select("meal_foods.food_id, SUM(meal_foods.quantity) AS total").
		Joins("JOIN meals ON meals.id = meal_foods.meal_id").
		Where("meals.user_id = ? AND meals.deleted_at IS NULL", userID).
		Group("meal_foods.food_id").
		Scan(&used).Error
	if err != nil {
		return nil, apperrors.IO("failed to aggregate meal usage", err)
	}

	stats := map[uint]*FoodStatistic{}
	get := func(foodID uint) *FoodStatistic {
		if st, ok := stats[foodID]; ok {
			return st
		}
		st := &FoodStatistic{ID: foodID}
		stats[foodID] = st
		return st
	}

	for _, r := range bought {
		st := get(r.FoodID)
		if r.IsBought {
			st.TotalBought += r.Total
		} else {
			st.TotalUnbought += r.Total
		}
	}
	for _, r := range used {
		get(r.FoodID).TotalUseInMeal += r.Total
	}

	ids := make([]uint, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	var foods []models.Food
	if len(ids) > 0 {
		if err := s.db.Where("id IN ?", ids).Order("name ASC").Find(&foods).Error; err != nil {
			return nil, apperrors.IO("failed to load foods", err)
		}
	}
	out := make([]FoodStatistic, 0, len(stats))
	for _, f := range foods { // foods are name-sorted, keeping the output order stable
		st := stats[f.ID]
		st.FoodName = f.Name
		st.Remaining = floor0(st.TotalBought - st.TotalUseInMeal)
		st.NeedToBuy = floor0(st.TotalUseInMeal - st.TotalBought)
		out = append(out, *st)
	}
	return out, nil
}

func floor0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
