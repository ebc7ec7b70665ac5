package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContentItem is one generated artifact inside a kit. The payload is a
// JSON document: a string for textual artifacts, a card list for
// flashcards. Never mutated after creation.
type ContentItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	KitID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"kit_id"`
	Index         int            `gorm:"not null;column:index" json:"index"`
	Type          ContentType    `gorm:"not null;column:type" json:"type"`
	LearningStyle LearningStyle  `gorm:"not null;column:learning_style" json:"learning_style"`
	Content       datatypes.JSON `gorm:"type:jsonb;column:content" json:"content"`
	Metadata      datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (ContentItem) TableName() string { return "content_item" }
