package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudySession pairs the learner's state at session start with the plan
// the advisor recommended for it. Immutable after creation.
type StudySession struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood                  Mood           `gorm:"not null;column:mood" json:"mood"`
	AvailableTime         int            `gorm:"not null;column:available_time" json:"available_time"`
	EnergyLevel           int            `gorm:"not null;column:energy_level" json:"energy_level"`
	FocusLevel            int            `gorm:"not null;column:focus_level" json:"focus_level"`
	PreferredContentTypes datatypes.JSON `gorm:"type:jsonb;column:preferred_content_types" json:"preferred_content_types"`
	Plan                  datatypes.JSON `gorm:"type:jsonb;column:plan" json:"plan"`
	CreatedAt             time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (StudySession) TableName() string { return "study_session" }
