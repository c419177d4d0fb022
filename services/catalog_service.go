package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/models"
)

// CatalogService is the read-only projection of the current menu. It is
// re-run on demand and after checkout so the display reflects stock
// changes; rows come back in storage order, no explicit sort.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a catalog reader over the given store.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListFoods returns every food row.
func (s *CatalogService) ListFoods() ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to load foods: %w", err)
	}
	return foods, nil
}

// ListDrinks returns every drink row.
func (s *CatalogService) ListDrinks() ([]models.Drink, error) {
	var drinks []models.Drink
	if err := s.db.Find(&drinks).Error; err != nil {
		return nil, fmt.Errorf("failed to load drinks: %w", err)
	}
	return drinks, nil
}
