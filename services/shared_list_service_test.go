package services

import (
	"testing"
	"time"

	"backend/apperrors"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sharedFixture struct {
	db        *gorm.DB
	groupSvc  *GroupService
	listSvc   *ShoppingListService
	sharedSvc *SharedListService
	alice     *models.User // leader
	bob       *models.User // member
	carol     *models.User // outsider
	group     *GroupResponse
	entry     *models.ShoppingListItem // alice's personal entry
}

func newSharedFixture(t *testing.T) *sharedFixture {
	t.Helper()
	db := newTestDB(t)
	groupSvc := NewGroupService(db)
	invSvc := NewInvitationService(db, groupSvc)
	foodSvc := NewFoodService(db)
	listSvc := NewShoppingListService(db, foodSvc)
	sharedSvc := NewSharedListService(db, groupSvc, nil)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	group, err := groupSvc.Create(alice.ID, "Household", "")
	require.NoError(t, err)
	inv, err := invSvc.Invite(alice.ID, group.ID, "bob")
	require.NoError(t, err)
	require.NoError(t, invSvc.Accept(bob.ID, inv.ID))

	food := seedFood(t, db, "milk", 60)
	entry, err := listSvc.Create(alice.ID, ShoppingListItemRequest{
		FoodID: food.ID, Quantity: 2, Date: time.Now(),
	})
	require.NoError(t, err)

	return &sharedFixture{
		db: db, groupSvc: groupSvc, listSvc: listSvc, sharedSvc: sharedSvc,
		alice: alice, bob: bob, carol: carol, group: group, entry: entry,
	}
}

func TestShareCreatesUnboughtProjection(t *testing.T) {
	f := newSharedFixture(t)

	shared, err := f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	require.NoError(t, err)

	require.NotNil(t, shared.IsBought)
	assert.False(t, *shared.IsBought)
	assert.Nil(t, shared.BoughtByUserID)
	assert.Equal(t, f.entry.ID, shared.ShoppingList.ID)
	assert.Equal(t, "milk", shared.ShoppingList.Food.Name)
}

func TestShareRequiresOwnershipAndMembership(t *testing.T) {
	f := newSharedFixture(t)

	// bob is a member but does not own alice's entry
	_, err := f.sharedSvc.Share(f.bob.ID, f.entry.ID, f.group.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))

	// carol owns nothing here and is not a member either
	_, err = f.sharedSvc.Share(f.carol.ID, f.entry.ID, f.group.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))

	var count int64
	f.db.Model(&models.SharedShoppingListItem{}).Count(&count)
	assert.Zero(t, count, "failed shares must not create projections")
}

func TestShareSameEntryTwiceConflicts(t *testing.T) {
	f := newSharedFixture(t)

	_, err := f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	require.NoError(t, err)
	_, err = f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestMarkAsBoughtRecordsBuyer(t *testing.T) {
	f := newSharedFixture(t)

	shared, err := f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	require.NoError(t, err)

	require.NoError(t, f.sharedSvc.MarkAsBought(f.bob.ID, shared.ID))

	var reloaded models.SharedShoppingListItem
	require.NoError(t, f.db.First(&reloaded, shared.ID).Error)
	require.NotNil(t, reloaded.IsBought)
	assert.True(t, *reloaded.IsBought)
	require.NotNil(t, reloaded.BoughtByUserID)
	assert.Equal(t, f.bob.ID, *reloaded.BoughtByUserID)
}

func TestMarkAsBoughtTwiceConflictsAndKeepsBuyer(t *testing.T) {
	f := newSharedFixture(t)

	shared, err := f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	require.NoError(t, err)
	require.NoError(t, f.sharedSvc.MarkAsBought(f.bob.ID, shared.ID))

	// the compare-and-set contract: a second mark is a conflict, and
	// the original buyer is never clobbered
	err = f.sharedSvc.MarkAsBought(f.alice.ID, shared.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))

	var reloaded models.SharedShoppingListItem
	require.NoError(t, f.db.First(&reloaded, shared.ID).Error)
	assert.Equal(t, f.bob.ID, *reloaded.BoughtByUserID)
}

func TestMarkAsBoughtRequiresMembership(t *testing.T) {
	f := newSharedFixture(t)

	shared, err := f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	require.NoError(t, err)

	err = f.sharedSvc.MarkAsBought(f.carol.ID, shared.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestListForGroupNewestFirst(t *testing.T) {
	f := newSharedFixture(t)

	food2 := seedFood(t, f.db, "bread", 250)
	entry2, err := f.listSvc.Create(f.alice.ID, ShoppingListItemRequest{
		FoodID: food2.ID, Quantity: 1, Date: time.Now(),
	})
	require.NoError(t, err)

	first, err := f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	require.NoError(t, err)
	// force distinct created_at values, sqlite timestamps are coarse
	f.db.Model(&models.SharedShoppingListItem{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Minute))
	second, err := f.sharedSvc.Share(f.alice.ID, entry2.ID, f.group.ID)
	require.NoError(t, err)

	items, err := f.sharedSvc.ListForGroup(f.bob.ID, f.group.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "most recent share surfaces first")

	// outsiders cannot read the group's list
	_, err = f.sharedSvc.ListForGroup(f.carol.ID, f.group.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestDeletingPersonalEntryRemovesProjection(t *testing.T) {
	f := newSharedFixture(t)

	shared, err := f.sharedSvc.Share(f.alice.ID, f.entry.ID, f.group.ID)
	require.NoError(t, err)

	require.NoError(t, f.listSvc.Delete(f.alice.ID, f.entry.ID))

	var count int64
	f.db.Model(&models.SharedShoppingListItem{}).Where("id = ?", shared.ID).Count(&count)
	assert.Zero(t, count, "the projection's lifecycle is tied to the personal entry")
}
