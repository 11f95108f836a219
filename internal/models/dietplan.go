package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal slot identifiers, in serving order.
const (
	SlotBreakfast      = "breakfast"
	SlotMorningSnack   = "morningSnack"
	SlotLunch          = "lunch"
	SlotAfternoonSnack = "afternoonSnack"
	SlotDinner         = "dinner"
)

// MealSlots lists the five fixed slots in serving order.
var MealSlots = []string{SlotBreakfast, SlotMorningSnack, SlotLunch, SlotAfternoonSnack, SlotDinner}

// MealRef links a plan slot to a recipe. The name snapshot is intentional
// denormalization: it survives the referenced recipe being deleted or renamed,
// so the read path can always render something for the slot.
type MealRef struct {
	RecipeID *uuid.UUID `gorm:"type:varchar(36)" json:"recipe"`
	Name     string     `gorm:"size:255" json:"name"`
}

// Empty reports whether the slot has neither a reference nor a name snapshot.
func (m MealRef) Empty() bool {
	return m.RecipeID == nil && m.Name == ""
}

// DietPlan holds one calendar day of meals for one user. At most one plan
// exists per (user, day); regeneration overwrites meals and summary in place.
type DietPlan struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_diet_plans_user_date" json:"userId"`
	// Date is normalized to midnight UTC of the plan's calendar day.
	Date time.Time `gorm:"not null;uniqueIndex:idx_diet_plans_user_date" json:"date"`

	Breakfast      MealRef `gorm:"embedded;embeddedPrefix:breakfast_" json:"breakfast"`
	MorningSnack   MealRef `gorm:"embedded;embeddedPrefix:morning_snack_" json:"morningSnack"`
	Lunch          MealRef `gorm:"embedded;embeddedPrefix:lunch_" json:"lunch"`
	AfternoonSnack MealRef `gorm:"embedded;embeddedPrefix:afternoon_snack_" json:"afternoonSnack"`
	Dinner         MealRef `gorm:"embedded;embeddedPrefix:dinner_" json:"dinner"`

	NutritionSummary Nutrition `gorm:"embedded;embeddedPrefix:summary_" json:"nutritionSummary"`
}

func (p *DietPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Slot returns a pointer to the MealRef for the given slot name.
func (p *DietPlan) Slot(slot string) *MealRef {
	switch slot {
	case SlotBreakfast:
		return &p.Breakfast
	case SlotMorningSnack:
		return &p.MorningSnack
	case SlotLunch:
		return &p.Lunch
	case SlotAfternoonSnack:
		return &p.AfternoonSnack
	case SlotDinner:
		return &p.Dinner
	}
	return nil
}

// DayOf truncates t to midnight UTC, the canonical plan date.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
