package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/config"
	"github.com/kendall-kelly/kendalls-kitchen/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return db
}

func TestListFoods(t *testing.T) {
	db := setupCatalogTestDB(t)
	svc := NewCatalogService(db)

	foods, err := svc.ListFoods()
	assert.NoError(t, err)
	assert.Len(t, foods, 5)
	assert.Equal(t, "Margherita Pizza", foods[0].Name, "Rows come back in storage order")
	assert.Equal(t, 12, *foods[0].Price)
}

func TestListDrinks(t *testing.T) {
	db := setupCatalogTestDB(t)
	svc := NewCatalogService(db)

	drinks, err := svc.ListDrinks()
	assert.NoError(t, err)
	assert.Len(t, drinks, 5)
	assert.Equal(t, "Coca-Cola", drinks[0].Name)
}

func TestListFoodsReflectsStockChanges(t *testing.T) {
	db := setupCatalogTestDB(t)
	svc := NewCatalogService(db)

	cart := models.NewCart()
	cart.Add(models.ItemFood, 1, "Margherita Pizza", 12, 2)
	_, err := NewCheckoutService(db).PlaceOrder(cart, 1, nil, "Cash")
	assert.NoError(t, err)

	foods, err := svc.ListFoods()
	assert.NoError(t, err)
	assert.Equal(t, 18, *foods[0].Quantity, "A re-read after checkout should show the decremented stock")
}
