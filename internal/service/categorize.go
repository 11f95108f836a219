package service

import (
	"strings"

	"github.com/momnutri/backend/internal/models"
)

// slotCategories maps a plan slot to its recipe category.
var slotCategories = map[string]string{
	models.SlotBreakfast:      models.CategoryBreakfast,
	models.SlotLunch:          models.CategoryLunch,
	models.SlotDinner:         models.CategoryDinner,
	models.SlotMorningSnack:   models.CategorySnack,
	models.SlotAfternoonSnack: models.CategorySnack,
}

var knownCategories = map[string]bool{
	models.CategoryBreakfast: true,
	models.CategoryLunch:     true,
	models.CategoryDinner:    true,
	models.CategorySnack:     true,
}

// nameCategoryKeywords is checked in order; first match wins.
var nameCategoryKeywords = []struct {
	keywords []string
	category string
}{
	{[]string{"午餐", "中餐", "lunch"}, models.CategoryLunch},
	{[]string{"晚餐", "dinner"}, models.CategoryDinner},
	{[]string{"加餐", "snack"}, models.CategorySnack},
}

// ResolveCategory picks the recipe category for a generated meal. An explicit,
// recognized category from the AI payload wins; otherwise the plan slot
// decides; otherwise the dish name is matched against the keyword table,
// defaulting to breakfast.
func ResolveCategory(aiCategory, slot, name string) string {
	if c := strings.ToLower(strings.TrimSpace(aiCategory)); knownCategories[c] {
		return c
	}

	if c, ok := slotCategories[slot]; ok {
		return c
	}

	lower := strings.ToLower(name)
	for _, entry := range nameCategoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return models.CategoryBreakfast
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// DefaultPreparationTime returns a sensible prep time in minutes when the AI
// did not supply one: quick for snacks and no-cook items, long for stews,
// soups and filled dumplings, otherwise a per-category default.
func DefaultPreparationTime(category, name string) int {
	lower := strings.ToLower(name)

	if category == models.CategorySnack ||
		containsAny(lower, "酸奶", "水果", "奶昔", "牛奶", "坚果") {
		return 5
	}

	if containsAny(lower, "炖", "焖", "煲", "汤", "馅", "饺") {
		return 25
	}

	switch category {
	case models.CategoryBreakfast:
		return 10
	case models.CategoryLunch, models.CategoryDinner:
		return 15
	default:
		return 10
	}
}

// DefaultCookingTime returns a cooking time in minutes when the AI did not
// supply one. Raw and dairy dishes need none; slow-cooked dishes the most.
func DefaultCookingTime(category, name string) int {
	lower := strings.ToLower(name)

	if strings.Contains(lower, "沙拉") ||
		(strings.Contains(lower, "生") && strings.Contains(lower, "果")) ||
		(strings.Contains(lower, "酸奶") && !strings.Contains(lower, "烤")) ||
		(strings.Contains(lower, "坚果") && !strings.Contains(lower, "烤")) {
		return 0
	}

	if containsAny(lower, "炖", "焖", "煲") ||
		(strings.Contains(lower, "汤") && !containsAny(lower, "速", "快")) {
		return 45
	}

	if containsAny(lower, "烤", "烘", "焙") {
		return 25
	}

	if containsAny(lower, "蒸", "饺", "包子") {
		return 20
	}

	switch category {
	case models.CategoryBreakfast:
		return 10
	case models.CategoryLunch, models.CategoryDinner:
		return 20
	case models.CategorySnack:
		return 5
	default:
		return 15
	}
}
