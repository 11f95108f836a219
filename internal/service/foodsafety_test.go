package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momnutri/backend/internal/models"
	"github.com/momnutri/backend/internal/testdb"
)

func seedFoods(t *testing.T, svc *FoodSafetyService) {
	t.Helper()
	foods := []models.FoodSafety{
		{
			Name:        "三文鱼",
			Category:    "seafood",
			SafetyLevel: models.SafetyModerate,
			Description: "富含omega-3脂肪酸的鱼类",
			Reason:      "熟透可以食用，孕期应避免生鱼片。",
		},
		{
			Name:         "生食寿司",
			Category:     "seafood",
			SafetyLevel:  models.SafetyUnsafe,
			Description:  "日式料理，通常包含生鱼片",
			Reason:       "生鱼可能含有寄生虫和李斯特菌。",
			Alternatives: models.JSONBStringArray{"熟食寿司"},
		},
		{
			Name:        "菠菜",
			Category:    "vegetables",
			SafetyLevel: models.SafetySafe,
			Description: "富含叶酸和铁的绿叶蔬菜",
			Reason:      "有助于预防胎儿神经管缺陷。",
		},
	}
	for i := range foods {
		require.NoError(t, svc.db.Create(&foods[i]).Error)
	}
}

func TestFoodSafetySearch(t *testing.T) {
	svc := NewFoodSafetyService(testdb.OpenSQLite(t))
	seedFoods(t, svc)
	ctx := context.Background()

	t.Run("match by name", func(t *testing.T) {
		results, err := svc.Search(ctx, "三文鱼")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, models.SafetyModerate, results[0].SafetyLevel)
	})

	t.Run("match by description substring", func(t *testing.T) {
		results, err := svc.Search(ctx, "生鱼片")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := svc.Search(ctx, "榴莲")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty query", func(t *testing.T) {
		results, err := svc.Search(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestFoodSafetyGetByName(t *testing.T) {
	svc := NewFoodSafetyService(testdb.OpenSQLite(t))
	seedFoods(t, svc)
	ctx := context.Background()

	entry, err := svc.GetByName(ctx, "菠菜")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, models.SafetySafe, entry.SafetyLevel)

	missing, err := svc.GetByName(ctx, "榴莲")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
