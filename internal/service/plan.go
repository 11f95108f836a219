package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/momnutri/backend/internal/models"
)

var (
	ErrProfileIncomplete = errors.New("health profile incomplete: due date required")
	ErrPlanNotFound      = errors.New("diet plan not found")
)

const planCacheTTL = 24 * time.Hour

// MealView is a fully resolved meal as returned to clients.
type MealView struct {
	ID              *uuid.UUID          `json:"id,omitempty"`
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	ImageURL        string              `json:"image"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	Steps           []string            `json:"steps"`
	PreparationTime int                 `json:"preparationTime"`
	CookingTime     int                 `json:"cookingTime"`
	Nutrition       models.Nutrition    `json:"nutrition"`
	Tips            []string            `json:"tips"`
}

// PlanView is one day's plan with every slot resolved. A slot the generation
// could not fill is null.
type PlanView struct {
	Date             string           `json:"date"`
	Breakfast        *MealView        `json:"breakfast"`
	MorningSnack     *MealView        `json:"morningSnack"`
	Lunch            *MealView        `json:"lunch"`
	AfternoonSnack   *MealView        `json:"afternoonSnack"`
	Dinner           *MealView        `json:"dinner"`
	NutritionSummary models.Nutrition `json:"nutritionSummary"`
}

func (v *PlanView) setSlot(slot string, meal *MealView) {
	switch slot {
	case models.SlotBreakfast:
		v.Breakfast = meal
	case models.SlotMorningSnack:
		v.MorningSnack = meal
	case models.SlotLunch:
		v.Lunch = meal
	case models.SlotAfternoonSnack:
		v.AfternoonSnack = meal
	case models.SlotDinner:
		v.Dinner = meal
	}
}

// DietPlanService generates, stores and serves daily meal plans.
type DietPlanService struct {
	db        *gorm.DB
	redis     *redis.Client
	provider  MealPlanProvider
	recipes   *RecipeService
	useBackup bool
}

// NewDietPlanService wires the plan pipeline. The redis client may be nil;
// caching is then skipped.
func NewDietPlanService(db *gorm.DB, redisClient *redis.Client, provider MealPlanProvider, recipes *RecipeService, useBackup bool) *DietPlanService {
	return &DietPlanService{
		db:        db,
		redis:     redisClient,
		provider:  provider,
		recipes:   recipes,
		useBackup: useBackup,
	}
}

// GenerateDaily produces and stores the plan for the user's calendar day.
// Regenerating an existing day overwrites its meals and summary in place.
func (s *DietPlanService) GenerateDaily(ctx context.Context, user *models.User, date time.Time) (*PlanView, error) {
	if !user.HealthInfo.Complete() {
		return nil, ErrProfileIncomplete
	}

	week := CurrentWeek(user.HealthInfo.DueDate, time.Now())
	profile := PlanProfile{
		Week:          week,
		Trimester:     Trimester(week),
		Allergies:     user.HealthInfo.Allergies,
		DislikedFoods: user.HealthInfo.DislikedFoods,
		Conditions:    user.HealthInfo.HealthConditions,
	}

	generated, err := GeneratePlanWithRetry(ctx, s.provider, profile)
	if err != nil {
		if !s.useBackup {
			return nil, err
		}
		log.Printf("[DietPlan] generation failed, serving backup plan: %v", err)
		generated = BackupMealPlan()
	}

	// Resolve the five slots concurrently. A failed slot stays nil and the
	// plan is still produced.
	resolved := make([]*models.Recipe, len(models.MealSlots))
	var wg sync.WaitGroup
	for i, slot := range models.MealSlots {
		meal := generated.Slot(slot)
		if meal == nil {
			continue
		}
		wg.Add(1)
		go func(i int, slot string, meal *GeneratedMeal) {
			defer wg.Done()
			recipe, err := s.recipes.FindOrCreate(ctx, slot, meal)
			if err != nil {
				log.Printf("[DietPlan] failed to resolve %s: %v", slot, err)
				return
			}
			resolved[i] = recipe
		}(i, slot, meal)
	}
	wg.Wait()

	day := models.DayOf(date)
	plan := models.DietPlan{UserID: user.ID, Date: day}
	var summary models.Nutrition
	for i, slot := range models.MealSlots {
		if recipe := resolved[i]; recipe != nil {
			id := recipe.ID
			*plan.Slot(slot) = models.MealRef{RecipeID: &id, Name: recipe.Name}
			summary.Add(recipe.Nutrition)
		}
	}
	plan.NutritionSummary = summary

	if err := s.upsert(ctx, &plan); err != nil {
		return nil, fmt.Errorf("failed to store diet plan: %w", err)
	}

	view := s.buildView(day, &plan, resolved)
	s.cachePut(ctx, user.ID, day, view)
	return view, nil
}

// upsert writes the plan, replacing an existing row for the same user and day.
// There is no surrounding transaction; concurrent regenerations race and the
// last write wins.
func (s *DietPlanService) upsert(ctx context.Context, plan *models.DietPlan) error {
	var existing models.DietPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", plan.UserID, plan.Date).
		First(&existing).Error
	if err == nil {
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
		return s.db.WithContext(ctx).Save(plan).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(plan).Error
}

// GetPlan returns the stored plan for the day, consulting the cache first.
func (s *DietPlanService) GetPlan(ctx context.Context, userID uuid.UUID, date time.Time) (*PlanView, error) {
	day := models.DayOf(date)

	if view := s.cacheGet(ctx, userID, day); view != nil {
		return view, nil
	}

	var plan models.DietPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	view := &PlanView{Date: day.Format("2006-01-02"), NutritionSummary: plan.NutritionSummary}
	for _, slot := range models.MealSlots {
		ref := plan.Slot(slot)
		if ref.Empty() {
			continue
		}
		view.setSlot(slot, s.resolveRef(ctx, slot, *ref))
	}

	s.cachePut(ctx, userID, day, view)
	return view, nil
}

// resolveRef loads the referenced recipe. A dangling reference degrades to a
// placeholder meal carrying the name snapshot and zeroed nutrition, so the
// slot is still rendered.
func (s *DietPlanService) resolveRef(ctx context.Context, slot string, ref models.MealRef) *MealView {
	if ref.RecipeID != nil {
		recipe, err := s.recipes.GetByID(ctx, *ref.RecipeID)
		if err == nil {
			return recipeView(recipe)
		}
		log.Printf("[DietPlan] dangling recipe reference %s for %s, serving placeholder", ref.RecipeID, slot)
	}
	return &MealView{
		Name:        ref.Name,
		Category:    ResolveCategory("", slot, ref.Name),
		ImageURL:    GenerateRecipeImageURL(ref.Name),
		Ingredients: []models.Ingredient{},
		Steps:       []string{},
		Tips:        []string{},
	}
}

func (s *DietPlanService) buildView(day time.Time, plan *models.DietPlan, resolved []*models.Recipe) *PlanView {
	view := &PlanView{
		Date:             day.Format("2006-01-02"),
		NutritionSummary: plan.NutritionSummary,
	}
	for i, slot := range models.MealSlots {
		if recipe := resolved[i]; recipe != nil {
			view.setSlot(slot, recipeView(recipe))
		}
	}
	return view
}

func recipeView(r *models.Recipe) *MealView {
	id := r.ID
	return &MealView{
		ID:              &id,
		Name:            r.Name,
		Category:        r.Category,
		ImageURL:        r.ImageURL,
		Ingredients:     r.Ingredients,
		Steps:           r.Steps,
		PreparationTime: r.PreparationTime,
		CookingTime:     r.CookingTime,
		Nutrition:       r.Nutrition,
		Tips:            r.Tips,
	}
}

func planCacheKey(userID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("dietplan:%s:%s", userID, day.Format("2006-01-02"))
}

func (s *DietPlanService) cacheGet(ctx context.Context, userID uuid.UUID, day time.Time) *PlanView {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, planCacheKey(userID, day)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[DietPlan] cache read failed: %v", err)
		}
		return nil
	}
	var view PlanView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil
	}
	return &view
}

func (s *DietPlanService) cachePut(ctx context.Context, userID uuid.UUID, day time.Time, view *PlanView) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, planCacheKey(userID, day), data, planCacheTTL).Err(); err != nil {
		log.Printf("[DietPlan] cache write failed: %v", err)
	}
}
