package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food safety levels, from "eat freely" to "do not eat".
const (
	SafetySafe     = "safe"
	SafetyModerate = "moderate"
	SafetyCaution  = "caution"
	SafetyUnsafe   = "unsafe"
)

// FoodSafety is a shared reference entry describing whether a food is safe
// during pregnancy. The pipeline only reads this data; it is loaded by the
// seed command.
type FoodSafety struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Name         string           `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Category     string           `gorm:"size:50;not null" json:"category"`
	SafetyLevel  string           `gorm:"size:20;not null" json:"safetyLevel"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Reason       string           `gorm:"type:text;not null" json:"reason"`
	Alternatives JSONBStringArray `gorm:"type:jsonb;default:'[]'" json:"alternatives"`
	Tips         JSONBStringArray `gorm:"type:jsonb;default:'[]'" json:"tips"`
}

func (f *FoodSafety) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
