package services

import (
	"testing"
	"time"

	"backend/apperrors"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListCreateAndPatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db, NewFoodService(db))
	user := seedUser(t, db, "alice")
	food := seedFood(t, db, "milk", 60)

	item, err := svc.Create(user.ID, ShoppingListItemRequest{
		FoodID: food.ID, Quantity: 2, Date: time.Now(), Note: "2% fat",
	})
	require.NoError(t, err)
	assert.False(t, item.IsBought)
	assert.Equal(t, "milk", item.Food.Name)

	qty := 3.0
	bought := true
	patched, err := svc.Update(user.ID, item.ID, ShoppingListPatch{Quantity: &qty, IsBought: &bought})
	require.NoError(t, err)
	assert.Equal(t, 3.0, patched.Quantity)
	assert.True(t, patched.IsBought)
	assert.Equal(t, "2% fat", patched.Note, "unpatched fields stay put")

	bad := -1.0
	_, err = svc.Update(user.ID, item.ID, ShoppingListPatch{Quantity: &bad})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestShoppingListBatchCreateAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db, NewFoodService(db))
	user := seedUser(t, db, "alice")
	milk := seedFood(t, db, "milk", 60)
	bread := seedFood(t, db, "bread", 250)

	items, err := svc.CreateBatch(user.ID, []ShoppingListItemRequest{
		{FoodID: milk.ID, Quantity: 2, Date: time.Now()},
		{FoodID: bread.ID, Quantity: 1, Date: time.Now()},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "milk", items[0].Food.Name)
	assert.Equal(t, "bread", items[1].Food.Name)

	// one unresolvable food sinks the whole batch
	_, err = svc.CreateBatch(user.ID, []ShoppingListItemRequest{
		{FoodID: milk.ID, Quantity: 1, Date: time.Now()},
		{FoodID: 9999, Quantity: 1, Date: time.Now()},
	})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	var count int64
	db.Model(&models.ShoppingListItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(2), count, "a failed batch must not leave partial rows")

	_, err = svc.CreateBatch(user.ID, nil)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestShoppingListRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db, NewFoodService(db))
	user := seedUser(t, db, "alice")
	food := seedFood(t, db, "milk", 60)

	_, err := svc.Create(user.ID, ShoppingListItemRequest{FoodID: food.ID, Quantity: -1, Date: time.Now()})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = svc.Create(user.ID, ShoppingListItemRequest{FoodID: 9999, Quantity: 1, Date: time.Now()})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	// zero quantity is allowed: a note-only line
	item, err := svc.Create(user.ID, ShoppingListItemRequest{FoodID: food.ID, Quantity: 0, Date: time.Now(), Note: "if on sale"})
	require.NoError(t, err)
	assert.Zero(t, item.Quantity)
}

func TestShoppingListOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db, NewFoodService(db))
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	food := seedFood(t, db, "milk", 60)

	item, err := svc.Create(alice.ID, ShoppingListItemRequest{FoodID: food.ID, Quantity: 1, Date: time.Now()})
	require.NoError(t, err)

	_, err = svc.Get(bob.ID, item.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	err = svc.Delete(bob.ID, item.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestShoppingListDateRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewShoppingListService(db, NewFoodService(db))
	user := seedUser(t, db, "alice")
	food := seedFood(t, db, "milk", 60)

	day := func(d int) time.Time { return time.Date(2026, 5, d, 9, 0, 0, 0, time.Local) }
	for d := 1; d <= 5; d++ {
		_, err := svc.Create(user.ID, ShoppingListItemRequest{FoodID: food.ID, Quantity: 1, Date: day(d)})
		require.NoError(t, err)
	}

	items, total, _, err := svc.ListByDateRange(user.ID, 1, 10, day(2), day(4))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "both bounds inclusive")
	assert.Len(t, items, 3)

	_, _, _, err = svc.ListByDateRange(user.ID, 1, 10, day(4), day(2))
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}
