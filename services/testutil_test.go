package services

import (
	"fmt"
	"strings"
	"testing"

	"backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// named in-memory DB with a shared cache, so gorm's connection pool
	// sees one database per test instead of one per connection
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Meal{},
		&models.MealFood{},
		&models.ShoppingListItem{},
		&models.Group{},
		&models.UserGroup{},
		&models.Invitation{},
		&models.SharedShoppingListItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedFood(t *testing.T, db *gorm.DB, name string, calories float64) *models.Food {
	t.Helper()
	f := &models.Food{
		Name:          name,
		Calories:      calories,
		Protein:       10,
		Carbohydrates: 20,
		Fats:          5,
		Vitamins:      1,
		Minerals:      2,
	}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return f
}
