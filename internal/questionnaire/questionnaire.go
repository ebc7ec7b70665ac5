// Package questionnaire serves the fixed learning style assessment
// questionnaire. The questions ship with the binary; each option maps
// an answer to one of the four learning styles.
package questionnaire

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/educrate/educrate-backend/internal/types"
)

//go:embed questions.yaml
var questionsYAML []byte

type Option struct {
	Value types.LearningStyle `yaml:"value" json:"value"`
	Text  string              `yaml:"text" json:"text"`
}

type Question struct {
	ID       int      `yaml:"id" json:"id"`
	Question string   `yaml:"question" json:"question"`
	Options  []Option `yaml:"options" json:"options"`
}

type questionFile struct {
	Questions []Question `yaml:"questions"`
}

// Load parses the embedded questionnaire and validates that every
// option maps to a known learning style.
func Load() ([]Question, error) {
	var file questionFile
	if err := yaml.Unmarshal(questionsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse assessment questions: %w", err)
	}
	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("assessment questionnaire is empty")
	}
	for _, q := range file.Questions {
		for _, opt := range q.Options {
			if _, err := types.ParseLearningStyle(string(opt.Value)); err != nil {
				return nil, fmt.Errorf("question %d: %w", q.ID, err)
			}
		}
	}
	return file.Questions, nil
}
