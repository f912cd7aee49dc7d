package services

import (
	"testing"
	"time"

	"backend/apperrors"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionStatsSumsWindow(t *testing.T) {
	db := newTestDB(t)
	mealSvc := NewMealService(db, NewFoodService(db))
	svc := NewNutritionService(db)
	user := seedUser(t, db, "alice")
	rice := seedFood(t, db, "rice", 100) // protein 10, carbs 20, fats 5, vit 1, min 2

	day := func(d int) time.Time { return time.Date(2026, 4, d, 13, 0, 0, 0, time.Local) }
	_, err := mealSvc.Create(user.ID, "in window", models.MealTypeLunch, day(10), []MealFoodRequest{
		{FoodID: rice.ID, Quantity: 2},
	})
	require.NoError(t, err)
	_, err = mealSvc.Create(user.ID, "out of window", models.MealTypeDinner, day(20), []MealFoodRequest{
		{FoodID: rice.ID, Quantity: 5},
	})
	require.NoError(t, err)

	stats, err := svc.Stats(user.ID, day(1), day(15))
	require.NoError(t, err)

	assert.Equal(t, 200.0, stats.TotalCalories)
	assert.Equal(t, 20.0, stats.TotalProtein)
	assert.Equal(t, 40.0, stats.TotalCarbohydrates)
	assert.Equal(t, 10.0, stats.TotalFats)
	assert.Equal(t, 2.0, stats.TotalVitamins)
	assert.Equal(t, 4.0, stats.TotalMinerals)
	assert.Equal(t, "2026-04-01", stats.FromDate)
	assert.Equal(t, "2026-04-15", stats.ToDate)
}

func TestNutritionStatsEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := seedUser(t, db, "alice")

	stats, err := svc.Stats(user.ID, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCalories)

	_, err = svc.Stats(user.ID, time.Now(), time.Now().AddDate(0, 0, -1))
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}
