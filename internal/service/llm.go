package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/momnutri/backend/internal/models"
)

// GeneratedMeal is one dish as returned by the AI, before normalization.
type GeneratedMeal struct {
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	PreparationTime FlexFloat           `json:"preparationTime"`
	CookingTime     FlexFloat           `json:"cookingTime"`
	Steps           []string            `json:"steps"`
	Nutrition       *NutritionPayload   `json:"nutrition"`
	Tips            []string            `json:"tips"`
}

// GeneratedPlan is the AI's daily plan payload: three meals and two snacks.
// Any slot may be nil or unusable; the orchestrator decides what to do then.
type GeneratedPlan struct {
	Breakfast      *GeneratedMeal    `json:"breakfast"`
	MorningSnack   *GeneratedMeal    `json:"morningSnack"`
	Lunch          *GeneratedMeal    `json:"lunch"`
	AfternoonSnack *GeneratedMeal    `json:"afternoonSnack"`
	Dinner         *GeneratedMeal    `json:"dinner"`
	Summary        *NutritionPayload `json:"nutritionSummary"`
}

// Slot returns the generated meal for the given slot name, or nil.
func (p *GeneratedPlan) Slot(slot string) *GeneratedMeal {
	switch slot {
	case models.SlotBreakfast:
		return p.Breakfast
	case models.SlotMorningSnack:
		return p.MorningSnack
	case models.SlotLunch:
		return p.Lunch
	case models.SlotAfternoonSnack:
		return p.AfternoonSnack
	case models.SlotDinner:
		return p.Dinner
	}
	return nil
}

// PlanProfile is the subset of the user's health profile the prompt needs.
type PlanProfile struct {
	Week          int
	Trimester     string
	Allergies     []string
	DislikedFoods []string
	Conditions    models.HealthConditions
}

// MealPlanProvider generates a daily meal plan for a pregnancy profile.
type MealPlanProvider interface {
	GenerateDailyPlan(ctx context.Context, profile PlanProfile) (*GeneratedPlan, error)
}

const systemPrompt = "你是一个专业的孕期营养师，根据准妈妈的情况给出科学、安全、美味的膳食建议。请严格按照返回的JSON格式要求输出。"

// buildPlanPrompt renders the user prompt: the pregnancy context plus the
// exact JSON shape the response must take.
func buildPlanPrompt(p PlanProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "请为一位怀孕第%d周（%s）的准妈妈制定今日三餐和两次加餐的营养食谱。\n\n",
		p.Week, trimesterZH(p.Trimester))

	if len(p.Allergies) > 0 {
		fmt.Fprintf(&b, "她对以下食物过敏: %s。\n", strings.Join(p.Allergies, ", "))
	}
	if len(p.DislikedFoods) > 0 {
		fmt.Fprintf(&b, "她不喜欢吃: %s。\n", strings.Join(p.DislikedFoods, ", "))
	}
	if conditions := conditionLabels(p.Conditions); len(conditions) > 0 {
		fmt.Fprintf(&b, "她的健康状况: %s。\n", strings.Join(conditions, ", "))
	}

	b.WriteString(`
请根据《中国居民膳食指南》孕期妇女部分，确保推荐的食谱组合满足对应孕周的能量、蛋白质、叶酸、铁、钙等关键营养素需求。
不要推荐任何孕期禁忌或慎食食物，烹饪步骤尽量详细，适合老人参照烹饪。

返回JSON格式，包含以下字段:
{
  "breakfast": {
    "name": "菜名",
    "category": "breakfast",
    "ingredients": [{"name": "食材名", "amount": "用量"}],
    "preparationTime": 准备时间(数字,分钟),
    "cookingTime": 烹饪时间(数字,分钟),
    "steps": ["步骤1", "步骤2"],
    "nutrition": {"calories": 数字(千卡), "protein": 数字(克), "fat": 数字(克), "carbs": 数字(克), "fiber": 数字(克), "calcium": 数字(毫克), "iron": 数字(毫克), "folicAcid": 数字(微克), "vitaminC": 数字(毫克), "vitaminE": 数字(毫克)},
    "tips": ["小贴士1"]
  },
  "morningSnack": { "name": "菜名", "category": "snack", ... },
  "lunch": { "name": "菜名", "category": "lunch", ... },
  "afternoonSnack": { "name": "菜名", "category": "snack", ... },
  "dinner": { "name": "菜名", "category": "dinner", ... },
  "nutritionSummary": {"calories": 数字(千卡), "protein": 数字(克), "fat": 数字(克), "carbs": 数字(克), "fiber": 数字(克)}
}
`)
	return b.String()
}

func conditionLabels(c models.HealthConditions) []string {
	var labels []string
	if c.GestationalDiabetes {
		labels = append(labels, "妊娠期糖尿病")
	}
	if c.Anemia {
		labels = append(labels, "贫血")
	}
	if c.Hypertension {
		labels = append(labels, "高血压")
	}
	if c.Other != "" {
		labels = append(labels, c.Other)
	}
	return labels
}

// parsePlanResponse extracts and validates the plan JSON from raw model text.
func parsePlanResponse(raw string) (*GeneratedPlan, error) {
	var plan GeneratedPlan
	if err := ExtractJSONObject(raw, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan response: %w", err)
	}

	named := false
	for _, slot := range models.MealSlots {
		if m := plan.Slot(slot); m != nil && m.Name != "" {
			named = true
			break
		}
	}
	if !named {
		return nil, fmt.Errorf("meal plan response contains no meals")
	}
	return &plan, nil
}

const (
	planMaxAttempts    = 3
	planInitialBackoff = time.Second
)

// GeneratePlanWithRetry calls the provider with bounded retries and
// exponential backoff. All attempts exhausted returns the last error.
func GeneratePlanWithRetry(ctx context.Context, provider MealPlanProvider, profile PlanProfile) (*GeneratedPlan, error) {
	backoff := planInitialBackoff
	var lastErr error

	for attempt := 0; attempt < planMaxAttempts; attempt++ {
		if attempt > 0 {
			log.Printf("[MealPlan] retrying generation (attempt %d/%d) after error: %v",
				attempt+1, planMaxAttempts, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		plan, err := provider.GenerateDailyPlan(ctx, profile)
		if err == nil {
			return plan, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("meal plan generation failed after %d attempts: %w", planMaxAttempts, lastErr)
}
