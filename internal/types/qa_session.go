package types

import (
	"time"

	"github.com/google/uuid"
)

// QASession records one question answered against a kit's stored source
// content. Immutable once written.
type QASession struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	KitID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"kit_id"`
	Question  string        `gorm:"not null;column:question" json:"question"`
	Answer    string        `gorm:"column:answer" json:"answer"`
	Context   string        `gorm:"column:context" json:"context"`
	Style     LearningStyle `gorm:"not null;column:style" json:"style"`
	CreatedAt time.Time     `gorm:"not null;default:now()" json:"created_at"`
}

func (QASession) TableName() string { return "qa_session" }
