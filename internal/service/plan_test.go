package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/momnutri/backend/internal/models"
	"github.com/momnutri/backend/internal/testdb"
)

type fixedProvider struct {
	plan  *GeneratedPlan
	err   error
	calls int
}

func (p *fixedProvider) GenerateDailyPlan(ctx context.Context, profile PlanProfile) (*GeneratedPlan, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.plan, nil
}

func fullGeneratedPlan() *GeneratedPlan {
	return &GeneratedPlan{
		Breakfast:      &GeneratedMeal{Name: "南瓜小米粥", Nutrition: &NutritionPayload{Calories: 320, Iron: 2}},
		MorningSnack:   &GeneratedMeal{Name: "酸奶拌蓝莓", Nutrition: &NutritionPayload{Calories: 120}},
		Lunch:          &GeneratedMeal{Name: "清蒸鲈鱼", Nutrition: &NutritionPayload{Calories: 450, Iron: 1.5}},
		AfternoonSnack: &GeneratedMeal{Name: "核桃仁", Nutrition: &NutritionPayload{Calories: 180}},
		Dinner:         &GeneratedMeal{Name: "番茄牛腩面", Nutrition: &NutritionPayload{Calories: 520, Iron: 4}},
	}
}

type planFixture struct {
	db      *gorm.DB
	plans   *DietPlanService
	recipes *RecipeService
	user    *models.User
}

func newPlanFixture(t *testing.T, provider MealPlanProvider, useBackup bool) *planFixture {
	t.Helper()
	db := testdb.OpenSQLite(t)

	images := NewImageService(nil, "", nil, t.TempDir(), "/images", false)
	recipes := NewRecipeService(db, images)
	plans := NewDietPlanService(db, nil, provider, recipes, useBackup)

	user := &models.User{
		Name:         "小美",
		Email:        "mei@example.com",
		PasswordHash: "x",
		HealthInfo: &models.HealthProfile{
			DueDate:   time.Now().AddDate(0, 0, 84),
			Allergies: []string{"花生"},
		},
	}
	require.NoError(t, db.Create(user).Error)

	return &planFixture{db: db, plans: plans, recipes: recipes, user: user}
}

func TestGenerateDaily(t *testing.T) {
	provider := &fixedProvider{plan: fullGeneratedPlan()}
	f := newPlanFixture(t, provider, false)
	ctx := context.Background()
	day := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	view, err := f.plans.GenerateDaily(ctx, f.user, day)
	require.NoError(t, err)

	t.Run("all five slots resolved", func(t *testing.T) {
		require.NotNil(t, view.Breakfast)
		require.NotNil(t, view.MorningSnack)
		require.NotNil(t, view.Lunch)
		require.NotNil(t, view.AfternoonSnack)
		require.NotNil(t, view.Dinner)
		assert.Equal(t, "南瓜小米粥", view.Breakfast.Name)
		assert.Equal(t, "2026-09-01", view.Date)
	})

	t.Run("summary is the field-wise sum", func(t *testing.T) {
		assert.Equal(t, 1590.0, view.NutritionSummary.Calories)
		assert.Equal(t, 7.5, view.NutritionSummary.Iron)
	})

	t.Run("one row per user and day", func(t *testing.T) {
		var count int64
		require.NoError(t, f.db.Model(&models.DietPlan{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("regeneration overwrites in place", func(t *testing.T) {
		provider.plan = &GeneratedPlan{
			Breakfast: &GeneratedMeal{Name: "蒸蛋羹", Nutrition: &NutritionPayload{Calories: 150}},
		}
		again, err := f.plans.GenerateDaily(ctx, f.user, day)
		require.NoError(t, err)
		assert.Equal(t, "蒸蛋羹", again.Breakfast.Name)
		assert.Nil(t, again.Lunch)
		assert.Equal(t, 150.0, again.NutritionSummary.Calories)

		var count int64
		require.NoError(t, f.db.Model(&models.DietPlan{}).Count(&count).Error)
		assert.EqualValues(t, 1, count, "same user and day reuses the row")
	})

	t.Run("repeated dishes reuse recipes", func(t *testing.T) {
		var count int64
		require.NoError(t, f.db.Model(&models.Recipe{}).Count(&count).Error)
		// 5 from the first generation plus 蒸蛋羹 from the second.
		assert.EqualValues(t, 6, count)
	})
}

func TestGenerateDailyProfileRequired(t *testing.T) {
	f := newPlanFixture(t, &fixedProvider{plan: fullGeneratedPlan()}, false)
	bare := &models.User{Name: "新用户", Email: "new@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.Create(bare).Error)

	_, err := f.plans.GenerateDaily(context.Background(), bare, time.Now())
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestGenerateDailyProviderFailure(t *testing.T) {
	t.Run("without backup data the error surfaces", func(t *testing.T) {
		f := newPlanFixture(t, &fixedProvider{err: errors.New("provider down")}, false)
		_, err := f.plans.GenerateDaily(context.Background(), f.user, time.Now())
		assert.Error(t, err)
	})

	t.Run("backup mode serves the fixed plan", func(t *testing.T) {
		f := newPlanFixture(t, &fixedProvider{err: errors.New("provider down")}, true)
		view, err := f.plans.GenerateDaily(context.Background(), f.user, time.Now())
		require.NoError(t, err)
		require.NotNil(t, view.Breakfast)
		assert.Equal(t, "红枣燕麦粥配水煮蛋", view.Breakfast.Name)
		require.NotNil(t, view.Dinner)
	})
}

func TestGetPlan(t *testing.T) {
	provider := &fixedProvider{plan: fullGeneratedPlan()}
	f := newPlanFixture(t, provider, false)
	ctx := context.Background()
	day := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	_, err := f.plans.GenerateDaily(ctx, f.user, day)
	require.NoError(t, err)

	t.Run("stored plan is returned with full recipes", func(t *testing.T) {
		view, err := f.plans.GetPlan(ctx, f.user.ID, day)
		require.NoError(t, err)
		require.NotNil(t, view.Lunch)
		assert.Equal(t, "清蒸鲈鱼", view.Lunch.Name)
		assert.Equal(t, 450.0, view.Lunch.Nutrition.Calories)
		assert.Equal(t, 1590.0, view.NutritionSummary.Calories)
	})

	t.Run("missing day is not found", func(t *testing.T) {
		_, err := f.plans.GetPlan(ctx, f.user.ID, day.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("dangling reference degrades to a placeholder meal", func(t *testing.T) {
		recipe, err := f.recipes.GetByName(ctx, "清蒸鲈鱼")
		require.NoError(t, err)
		require.NoError(t, f.db.Unscoped().Delete(&models.Recipe{}, "id = ?", recipe.ID).Error)

		view, err := f.plans.GetPlan(ctx, f.user.ID, day)
		require.NoError(t, err)
		require.NotNil(t, view.Lunch, "slot still rendered")
		assert.Equal(t, "清蒸鲈鱼", view.Lunch.Name)
		assert.Nil(t, view.Lunch.ID)
		assert.Zero(t, view.Lunch.Nutrition.Calories)
		assert.NotEmpty(t, view.Lunch.ImageURL)
	})
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	local := time.Date(2026, 9, 2, 1, 30, 0, 0, loc)
	day := models.DayOf(local)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), day)
}
