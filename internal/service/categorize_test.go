package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momnutri/backend/internal/models"
)

func TestResolveCategory(t *testing.T) {
	t.Run("explicit category wins", func(t *testing.T) {
		assert.Equal(t, models.CategorySnack, ResolveCategory("snack", models.SlotLunch, "午餐面条"))
		assert.Equal(t, models.CategoryDinner, ResolveCategory(" Dinner ", models.SlotBreakfast, "粥"))
	})

	t.Run("unrecognized category falls back to slot", func(t *testing.T) {
		assert.Equal(t, models.CategoryLunch, ResolveCategory("主食", models.SlotLunch, "米饭"))
		assert.Equal(t, models.CategorySnack, ResolveCategory("", models.SlotMorningSnack, "酸奶"))
		assert.Equal(t, models.CategorySnack, ResolveCategory("", models.SlotAfternoonSnack, "水果"))
	})

	t.Run("unknown slot consults name keywords", func(t *testing.T) {
		assert.Equal(t, models.CategoryLunch, ResolveCategory("", "", "营养午餐套饭"))
		assert.Equal(t, models.CategoryDinner, ResolveCategory("", "", "晚餐汤面"))
		assert.Equal(t, models.CategorySnack, ResolveCategory("", "", "下午加餐"))
	})

	t.Run("default is breakfast", func(t *testing.T) {
		assert.Equal(t, models.CategoryBreakfast, ResolveCategory("", "", "小米粥"))
	})
}

func TestDefaultPreparationTime(t *testing.T) {
	assert.Equal(t, 5, DefaultPreparationTime(models.CategorySnack, "混合坚果"))
	assert.Equal(t, 5, DefaultPreparationTime(models.CategoryBreakfast, "酸奶杯"))
	assert.Equal(t, 25, DefaultPreparationTime(models.CategoryDinner, "莲藕排骨汤"))
	assert.Equal(t, 25, DefaultPreparationTime(models.CategoryLunch, "韭菜饺子"))
	assert.Equal(t, 10, DefaultPreparationTime(models.CategoryBreakfast, "小米粥"))
	assert.Equal(t, 15, DefaultPreparationTime(models.CategoryLunch, "清炒时蔬"))
}

func TestDefaultCookingTime(t *testing.T) {
	assert.Equal(t, 0, DefaultCookingTime(models.CategoryLunch, "蔬菜沙拉"))
	assert.Equal(t, 0, DefaultCookingTime(models.CategorySnack, "坚果拼盘"))
	assert.Equal(t, 45, DefaultCookingTime(models.CategoryDinner, "清炖鸡汤"))
	assert.Equal(t, 45, DefaultCookingTime(models.CategoryLunch, "红烧焖牛腩"))
	assert.Equal(t, 25, DefaultCookingTime(models.CategorySnack, "烤红薯"))
	assert.Equal(t, 20, DefaultCookingTime(models.CategoryBreakfast, "蒸蛋羹"))
	assert.Equal(t, 20, DefaultCookingTime(models.CategoryLunch, "香菇青菜包子"))
	assert.Equal(t, 10, DefaultCookingTime(models.CategoryBreakfast, "煎蛋饼"))
	assert.Equal(t, 20, DefaultCookingTime(models.CategoryDinner, "清炒西兰花"))
	assert.Equal(t, 5, DefaultCookingTime(models.CategorySnack, "水果拼盘"))
}
