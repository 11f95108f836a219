package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/momnutri/backend/internal/models"
)

const foodSearchLimit = 20

// FoodSafetyService looks up pregnancy food-safety reference data. The
// pipeline only reads this table; the seed command populates it.
type FoodSafetyService struct {
	db *gorm.DB
}

func NewFoodSafetyService(db *gorm.DB) *FoodSafetyService {
	return &FoodSafetyService{db: db}
}

// Search finds foods matching the query. On Postgres it runs a ranked
// full-text search first; when that yields nothing, or on other dialects,
// it falls back to a substring match over name and description.
func (s *FoodSafetyService) Search(ctx context.Context, query string) ([]models.FoodSafety, error) {
	if query == "" {
		return []models.FoodSafety{}, nil
	}

	if s.db.Dialector.Name() == "postgres" {
		results, err := s.fullTextSearch(ctx, query)
		if err != nil {
			log.Printf("[FoodSafety] full-text search failed, falling back to ILIKE: %v", err)
		} else if len(results) > 0 {
			return results, nil
		}
	}

	return s.substringSearch(ctx, query)
}

func (s *FoodSafetyService) fullTextSearch(ctx context.Context, query string) ([]models.FoodSafety, error) {
	var results []models.FoodSafety
	err := s.db.WithContext(ctx).Raw(`
		SELECT * FROM food_safeties
		WHERE to_tsvector('simple', name || ' ' || description) @@ plainto_tsquery('simple', ?)
		ORDER BY ts_rank(to_tsvector('simple', name || ' ' || description), plainto_tsquery('simple', ?)) DESC
		LIMIT ?`, query, query, foodSearchLimit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *FoodSafetyService) substringSearch(ctx context.Context, query string) ([]models.FoodSafety, error) {
	var results []models.FoodSafety
	pattern := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern).
		Limit(foodSearchLimit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetByName returns the entry for an exact food name, or nil when absent.
func (s *FoodSafetyService) GetByName(ctx context.Context, name string) (*models.FoodSafety, error) {
	var entry models.FoodSafety
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
