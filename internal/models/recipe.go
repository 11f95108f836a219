package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Ingredient is a single recipe ingredient with a free-form amount ("200克", "1个").
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// IngredientList is stored as a JSONB array on the recipe row.
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Nutrition is the fixed block of the ten tracked nutrients. Units follow the
// 中国居民膳食指南 conventions: kcal, grams for macros and fiber, milligrams for
// calcium/iron/vitamins, micrograms for folic acid.
type Nutrition struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Carbs     float64 `json:"carbs"`
	Fiber     float64 `json:"fiber"`
	Calcium   float64 `json:"calcium"`
	Iron      float64 `json:"iron"`
	FolicAcid float64 `json:"folicAcid"`
	VitaminC  float64 `json:"vitaminC"`
	VitaminE  float64 `json:"vitaminE"`
}

// Add accumulates another nutrition block field-wise.
func (n *Nutrition) Add(other Nutrition) {
	n.Calories += other.Calories
	n.Protein += other.Protein
	n.Fat += other.Fat
	n.Carbs += other.Carbs
	n.Fiber += other.Fiber
	n.Calcium += other.Calcium
	n.Iron += other.Iron
	n.FolicAcid += other.FolicAcid
	n.VitaminC += other.VitaminC
	n.VitaminE += other.VitaminE
}

// TrimesterSuitability marks which pregnancy phases a recipe is suitable for.
type TrimesterSuitability struct {
	First  bool `json:"first"`
	Second bool `json:"second"`
	Third  bool `json:"third"`
}

// SuitableConditions marks health conditions a recipe is specifically suited to.
type SuitableConditions struct {
	GestationalDiabetes bool `json:"gestationalDiabetes"`
	Anemia              bool `json:"anemia"`
	Hypertension        bool `json:"hypertension"`
}

// Recipe is the canonical dish record. The name is the dedup key: generated
// meals are matched against existing recipes by exact name only.
type Recipe struct {
	ID              uuid.UUID            `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`
	Name            string               `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Category        string               `gorm:"size:50;not null" json:"category"`
	ImageURL        string               `gorm:"size:512" json:"image"`
	Ingredients     IngredientList       `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps           JSONBStringArray     `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	PreparationTime int                  `gorm:"not null" json:"preparationTime"`
	CookingTime     int                  `gorm:"not null" json:"cookingTime"`
	Nutrition       Nutrition            `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	Tips            JSONBStringArray     `gorm:"type:jsonb;default:'[]'" json:"tips"`
	IsPregnancySafe bool                 `gorm:"not null;default:true" json:"isPregnancySafe"`
	Trimesters      TrimesterSuitability `gorm:"embedded;embeddedPrefix:trimester_" json:"trimesterSuitability"`
	Conditions      SuitableConditions   `gorm:"embedded;embeddedPrefix:condition_" json:"suitableConditions"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Recipe categories.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
)
