package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/momnutri/backend/internal/models"
)

// FlexFloat tolerates the numeric sloppiness of LLM output: JSON numbers,
// numeric strings ("320", "12.5克"), null and absent values all decode without
// error. Anything unparseable is zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as number first
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}

	// Try to unmarshal as string, stripping unit suffixes
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexFloat(parseLeadingFloat(str))
		return nil
	}

	// null or any other shape contributes zero
	*f = 0
	return nil
}

// parseLeadingFloat parses the leading numeric portion of a string, so that
// values like "12.5克" or "320 kcal" still yield their number.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || (i == 0 && (r == '-' || r == '+')) {
			end = i + len(string(r))
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// NutritionPayload is the nutrition block as the AI returns it, before
// normalization.
type NutritionPayload struct {
	Calories  FlexFloat `json:"calories"`
	Protein   FlexFloat `json:"protein"`
	Fat       FlexFloat `json:"fat"`
	Carbs     FlexFloat `json:"carbs"`
	Fiber     FlexFloat `json:"fiber"`
	Calcium   FlexFloat `json:"calcium"`
	Iron      FlexFloat `json:"iron"`
	FolicAcid FlexFloat `json:"folicAcid"`
	VitaminC  FlexFloat `json:"vitaminC"`
	VitaminE  FlexFloat `json:"vitaminE"`
}

// NormalizeNutrition coerces an AI nutrition payload into the fixed ten-field
// block. A nil payload yields the zero block, so absent meals contribute
// nothing to a summary.
func NormalizeNutrition(p *NutritionPayload) models.Nutrition {
	if p == nil {
		return models.Nutrition{}
	}
	return models.Nutrition{
		Calories:  float64(p.Calories),
		Protein:   float64(p.Protein),
		Fat:       float64(p.Fat),
		Carbs:     float64(p.Carbs),
		Fiber:     float64(p.Fiber),
		Calcium:   float64(p.Calcium),
		Iron:      float64(p.Iron),
		FolicAcid: float64(p.FolicAcid),
		VitaminC:  float64(p.VitaminC),
		VitaminE:  float64(p.VitaminE),
	}
}

// SumNutrition folds nutrition blocks field-wise into a daily summary.
func SumNutrition(blocks ...models.Nutrition) models.Nutrition {
	var total models.Nutrition
	for _, b := range blocks {
		total.Add(b)
	}
	return total
}
