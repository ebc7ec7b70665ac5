package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LearningAssessment is immutable once created; its scores derive the
// user's dominant styles at submission time.
type LearningAssessment struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	VisualScore      int            `gorm:"not null;column:visual_score" json:"visual_score"`
	AuditoryScore    int            `gorm:"not null;column:auditory_score" json:"auditory_score"`
	TextualScore     int            `gorm:"not null;column:textual_score" json:"textual_score"`
	KinestheticScore int            `gorm:"not null;column:kinesthetic_score" json:"kinesthetic_score"`
	Answers          datatypes.JSON `gorm:"type:jsonb;column:answers" json:"answers"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (LearningAssessment) TableName() string { return "learning_assessment" }
