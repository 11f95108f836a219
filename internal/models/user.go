package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthConditions captures pregnancy-relevant conditions used to tailor meal plans.
type HealthConditions struct {
	GestationalDiabetes bool   `json:"gestationalDiabetes"`
	Anemia              bool   `json:"anemia"`
	Hypertension        bool   `json:"hypertension"`
	Other               string `json:"other,omitempty"`
}

// HealthProfile is the per-user pregnancy profile. It is stored on the user row
// as a JSONB document and overwritten as a whole by profile setup.
type HealthProfile struct {
	DueDate          time.Time        `json:"dueDate"`
	CurrentWeek      int              `json:"currentWeek,omitempty"`
	Allergies        []string         `json:"allergies"`
	DislikedFoods    []string         `json:"dislikedFoods"`
	HealthConditions HealthConditions `json:"healthConditions"`
}

// Value implements the driver.Valuer interface
func (p HealthProfile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *HealthProfile) Scan(value interface{}) error {
	if value == nil {
		*p = HealthProfile{}
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

	return json.Unmarshal(bytes, p)
}

// Complete reports whether the profile has been set up. A due date is the
// minimum required to generate a plan.
func (p *HealthProfile) Complete() bool {
	return p != nil && !p.DueDate.IsZero()
}

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	HealthInfo   *HealthProfile `gorm:"type:jsonb" json:"healthInfo,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
