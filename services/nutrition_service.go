package services

import (
	"math"
	"time"

	"backend/apperrors"
	"backend/models"

	"gorm.io/gorm"
)

type NutritionService struct{ db *gorm.DB }

func NewNutritionService(db *gorm.DB) *NutritionService { return &NutritionService{db: db} }

type NutritionStats struct {
	TotalCalories      float64 `json:"totalCalories"`
	TotalProtein       float64 `json:"totalProtein"`
	TotalCarbohydrates float64 `json:"totalCarbohydrates"`
	TotalFats          float64 `json:"totalFats"`
	TotalVitamins      float64 `json:"totalVitamins"`
	TotalMinerals      float64 `json:"totalMinerals"`
	FromDate           string  `json:"fromDate"`
	ToDate             string  `json:"toDate"`
}

// Stats sums quantity × snapshot over every meal line the user logged
// inside the window (both bounds inclusive).
func (s *NutritionService) Stats(userID uint, from, to time.Time) (*NutritionStats, error) {
	if to.Before(from) {
		return nil, apperrors.Validation("toDate must be on or after fromDate")
	}

	var meals []models.Meal
	err := s.db.
		Preload("Foods").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dayStart(from), dayEnd(to)).
		Find(&meals).Error
	if err != nil {
		return nil, apperrors.IO("failed to load meals", err)
	}

	out := &NutritionStats{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
	}
	for _, m := range meals {
		for _, f := range m.Foods {
			out.TotalCalories += f.Quantity * f.Calories
			out.TotalProtein += f.Quantity * f.Protein
			out.TotalCarbohydrates += f.Quantity * f.Carbohydrates
			out.TotalFats += f.Quantity * f.Fats
			out.TotalVitamins += f.Quantity * f.Vitamins
			out.TotalMinerals += f.Quantity * f.Minerals
		}
	}

	out.TotalCalories = round2(out.TotalCalories)
	out.TotalProtein = round2(out.TotalProtein)
	out.TotalCarbohydrates = round2(out.TotalCarbohydrates)
	out.TotalFats = round2(out.TotalFats)
	out.TotalVitamins = round2(out.TotalVitamins)
	out.TotalMinerals = round2(out.TotalMinerals)
	return out, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
