package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProcessingLogEntry is one step of a kit generation run. The ordered
// sequence is stored on the kit row and survives pipeline failure.
type ProcessingLogEntry struct {
	Step      string    `json:"step"`
	Status    LogStatus `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// LearningKit is written exactly once per pipeline run, in one of two
// terminal shapes: a completed kit with content items, or a reduced
// failed kit carrying only the error and the partial processing log.
type LearningKit struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic           string         `gorm:"not null;column:topic" json:"topic"`
	SourceContent   string         `gorm:"column:source_content" json:"source_content"`
	Status          KitStatus      `gorm:"not null;index;column:status" json:"status"`
	Error           string         `gorm:"column:error" json:"error,omitempty"`
	LearningStyles  datatypes.JSON `gorm:"type:jsonb;column:learning_styles" json:"learning_styles"`
	DifficultyLevel string         `gorm:"column:difficulty_level" json:"difficulty_level,omitempty"`
	EstimatedTime   int            `gorm:"column:estimated_time" json:"estimated_time"`
	ProcessingLog   datatypes.JSON `gorm:"type:jsonb;column:processing_log" json:"processing_log"`
	ContentItems    []*ContentItem `gorm:"foreignKey:KitID;references:ID" json:"content_items"`
	CreatedAt       time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (LearningKit) TableName() string { return "learning_kit" }

func (k *LearningKit) Styles() []LearningStyle {
	if k == nil || len(k.LearningStyles) == 0 {
		return nil
	}
	var raw []string
	if err := json.Unmarshal(k.LearningStyles, &raw); err != nil {
		return nil
	}
	out := make([]LearningStyle, 0, len(raw))
	for _, s := range raw {
		style, err := ParseLearningStyle(s)
		if err != nil {
			continue
		}
		out = append(out, style)
	}
	return out
}

func (k *LearningKit) Log() []ProcessingLogEntry {
	if k == nil || len(k.ProcessingLog) == 0 {
		return nil
	}
	var entries []ProcessingLogEntry
	if err := json.Unmarshal(k.ProcessingLog, &entries); err != nil {
		return nil
	}
	return entries
}

func ProcessingLogJSON(entries []ProcessingLogEntry) datatypes.JSON {
	if entries == nil {
		entries = []ProcessingLogEntry{}
	}
	b, _ := json.Marshal(entries)
	return datatypes.JSON(b)
}
