package generate

import (
	"strings"

	"github.com/educrate/educrate-backend/internal/types"
)

const answerFallbackLen = 100

// AnswerQuestion selects context sentences containing the question's
// first token (case-insensitive) and formats them with the same
// four-way style switch as Summary. When nothing matches, the opening
// of the context stands in so the answer is never empty for non-empty
// context.
func AnswerQuestion(question, context string, style types.LearningStyle) string {
	var matched []string
	if toks := Tokenize(question); len(toks) > 0 {
		key := strings.ToLower(cleanToken(toks[0]))
		if key != "" {
			for _, s := range SplitSentences(context) {
				if strings.Contains(strings.ToLower(s), key) {
					matched = append(matched, s)
				}
			}
		}
	}

	base := strings.Join(matched, ". ")
	if len(matched) == 0 {
		if fallback := excerpt(context, answerFallbackLen); fallback != "" {
			matched = []string{fallback}
			base = fallback
		}
	}

	return styleFormat(matched, base, style)
}
