package services

import (
	"testing"
	"time"

	"backend/apperrors"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFoodValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)

	_, err := svc.Create(FoodInput{Name: "", Calories: 10})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = svc.Create(FoodInput{Name: "rice", Calories: -1})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	food, err := svc.Create(FoodInput{Name: "rice", Calories: 100, Protein: 2})
	require.NoError(t, err)
	assert.Equal(t, "rice", food.Name)
}

func TestListFoodsPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)

	for _, name := range []string{"apple", "bread", "cheese", "dates", "eggs"} {
		_, err := svc.Create(FoodInput{Name: name, Calories: 100})
		require.NoError(t, err)
	}

	foods, totalPages, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
	assert.Equal(t, int64(3), totalPages)
	assert.Equal(t, "apple", foods[0].Name)

	foods, _, err = svc.List(3, 2)
	require.NoError(t, err)
	assert.Len(t, foods, 1)
	assert.Equal(t, "eggs", foods[0].Name)
}

func TestUpdateFoodImagePatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodService(db)

	url := "https://img.example/rice.png"
	food, err := svc.Create(FoodInput{Name: "rice", Calories: 100, ImageURL: &url})
	require.NoError(t, err)
	require.Equal(t, url, food.ImageURL)

	// nil leaves the reference alone
	food, err = svc.Update(food.ID, FoodInput{Name: "rice", Calories: 120})
	require.NoError(t, err)
	assert.Equal(t, url, food.ImageURL)

	// an explicit empty string clears it
	empty := ""
	food, err = svc.Update(food.ID, FoodInput{Name: "rice", Calories: 120, ImageURL: &empty})
	require.NoError(t, err)
	assert.Empty(t, food.ImageURL)
}

func TestDeleteFoodGuardsReferences(t *testing.T) {
	db := newTestDB(t)
	foodSvc := NewFoodService(db)
	mealSvc := NewMealService(db, foodSvc)
	listSvc := NewShoppingListService(db, foodSvc)
	user := seedUser(t, db, "alice")

	inMeal := seedFood(t, db, "rice", 100)
	_, err := mealSvc.Create(user.ID, "Lunch", models.MealTypeLunch, time.Now(), []MealFoodRequest{
		{FoodID: inMeal.ID, Quantity: 1},
	})
	require.NoError(t, err)
	err = foodSvc.Delete(inMeal.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict), "referenced by a meal line")

	onList := seedFood(t, db, "milk", 60)
	_, err = listSvc.Create(user.ID, ShoppingListItemRequest{FoodID: onList.ID, Quantity: 1, Date: time.Now()})
	require.NoError(t, err)
	err = foodSvc.Delete(onList.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict), "referenced by a shopping list")

	unused := seedFood(t, db, "salt", 0)
	require.NoError(t, foodSvc.Delete(unused.ID))
	_, err = foodSvc.Get(unused.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
