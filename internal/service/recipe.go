package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/momnutri/backend/internal/models"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService persists dishes, deduplicating by exact name.
type RecipeService struct {
	db     *gorm.DB
	images *ImageService
}

func NewRecipeService(db *gorm.DB, images *ImageService) *RecipeService {
	return &RecipeService{db: db, images: images}
}

// FindOrCreate resolves a generated meal to a recipe row. An existing recipe
// with the same name is reused as is; its fields are never merged with the
// fresh generation. New dishes get normalized nutrition, a resolved category,
// default times where missing, and an image. New recipes are marked pregnancy
// safe for all trimesters; the generation prompt already excludes unsafe
// foods, there is no cross-check against the food safety table.
func (s *RecipeService) FindOrCreate(ctx context.Context, slot string, meal *GeneratedMeal) (*models.Recipe, error) {
	if meal == nil || strings.TrimSpace(meal.Name) == "" {
		return nil, fmt.Errorf("meal for slot %q has no name", slot)
	}
	name := strings.TrimSpace(meal.Name)

	var existing models.Recipe
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		existing.ImageURL = s.images.FixURL(existing.ImageURL, existing.Name)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up recipe %q: %w", name, err)
	}

	category := ResolveCategory(meal.Category, slot, name)

	prepTime := int(meal.PreparationTime)
	if prepTime <= 0 {
		prepTime = DefaultPreparationTime(category, name)
	}
	cookTime := int(meal.CookingTime)
	if cookTime <= 0 {
		cookTime = DefaultCookingTime(category, name)
	}

	ingredientNames := make([]string, 0, len(meal.Ingredients))
	for _, ing := range meal.Ingredients {
		ingredientNames = append(ingredientNames, ing.Name)
	}

	recipe := models.Recipe{
		Name:            name,
		Category:        category,
		ImageURL:        s.images.AcquireImage(ctx, name, ingredientNames),
		Ingredients:     meal.Ingredients,
		Steps:           meal.Steps,
		PreparationTime: prepTime,
		CookingTime:     cookTime,
		Nutrition:       NormalizeNutrition(meal.Nutrition),
		Tips:            meal.Tips,
		IsPregnancySafe: true,
		Trimesters:      models.TrimesterSuitability{First: true, Second: true, Third: true},
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		// A concurrent resolution of the same dish may have won the insert.
		var winner models.Recipe
		if lookupErr := s.db.WithContext(ctx).Where("name = ?", name).First(&winner).Error; lookupErr == nil {
			log.Printf("[RecipeService] concurrent insert for %q, reusing existing row", name)
			return &winner, nil
		}
		return nil, fmt.Errorf("failed to create recipe %q: %w", name, err)
	}
	return &recipe, nil
}

// GetByName returns the recipe with the exact name.
func (s *RecipeService) GetByName(ctx context.Context, name string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	recipe.ImageURL = s.images.FixURL(recipe.ImageURL, recipe.Name)
	return &recipe, nil
}

// GetByID returns the recipe with the given id.
func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	recipe.ImageURL = s.images.FixURL(recipe.ImageURL, recipe.Name)
	return &recipe, nil
}

// ListFilter narrows the recipe listing.
type ListFilter struct {
	Category  string
	Trimester string // "first", "second" or "third"
	Search    string // substring match on the name
}

// List returns recipes newest first, optionally filtered.
func (s *RecipeService) List(ctx context.Context, filter ListFilter) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{}).Order("created_at DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	switch filter.Trimester {
	case TrimesterFirst:
		query = query.Where("trimester_first = ?", true)
	case TrimesterSecond:
		query = query.Where("trimester_second = ?", true)
	case TrimesterThird:
		query = query.Where("trimester_third = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].ImageURL = s.images.FixURL(recipes[i].ImageURL, recipes[i].Name)
	}
	return recipes, nil
}
