package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string         `gorm:"not null;column:name" json:"name"`
	Email             string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	LearningStyles    datatypes.JSON `gorm:"type:jsonb;column:learning_styles" json:"learning_styles"`
	PreferredLanguage string         `gorm:"not null;default:en;column:preferred_language" json:"preferred_language"`
	Timezone          string         `gorm:"not null;default:UTC;column:timezone" json:"timezone"`
	CreatedAt         time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "user" }

// Styles decodes the stored learning_styles column. Unknown values are
// skipped so a bad row cannot poison style resolution.
func (u *User) Styles() []LearningStyle {
	if u == nil || len(u.LearningStyles) == 0 {
		return nil
	}
	var raw []string
	if err := json.Unmarshal(u.LearningStyles, &raw); err != nil {
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

func StylesJSON(styles []LearningStyle) datatypes.JSON {
	if styles == nil {
		styles = []LearningStyle{}
	}
	b, _ := json.Marshal(styles)
	return datatypes.JSON(b)
}
