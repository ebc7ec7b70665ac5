package generate

import (
	"fmt"
	"strings"

	"github.com/educrate/educrate-backend/internal/types"
)

// summarySentenceMinLen filters out fragments too short to carry a point.
const summarySentenceMinLen = 20

const summarySentenceCount = 3

// Summary produces the style-formatted summary artifact for content.
// Deterministic: identical input and style yield identical output.
func Summary(content string, style types.LearningStyle) string {
	sentences := qualifyingSentences(content, summarySentenceMinLen, summarySentenceCount)
	return styleFormat(sentences, content, style)
}

// qualifyingSentences returns up to limit sentences longer than minLen.
// When nothing qualifies it falls back to whatever sentences exist, so
// short content is still summarized in full.
func qualifyingSentences(content string, minLen, limit int) []string {
	all := SplitSentences(content)
	out := make([]string, 0, limit)
	for _, s := range all {
		if len(s) > minLen {
			out = append(out, s)
		}
		if len(out) == limit {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// styleFormat is the single four-way formatting switch shared by Summary
// and AnswerQuestion. parts are the selected sentences; base is the text
// excerpts and key concepts are drawn from.
func styleFormat(parts []string, base string, style types.LearningStyle) string {
	var b strings.Builder
	switch style {
	case types.StyleVisual:
		b.WriteString("Visual Summary:\n")
		for _, s := range parts {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "Key Concept: %s", firstClause(base))
	case types.StyleAuditory:
		b.WriteString("Listen closely to these points:\n")
		for i, s := range parts {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
		b.WriteString("Replay this summary until each point sounds familiar.")
	case types.StyleTextual:
		fmt.Fprintf(&b, "Overview:\n%s\n\nKey Takeaways:\n", excerpt(base, 300))
		for _, s := range parts {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	default:
		// kinesthetic
		b.WriteString("Hands-On Review:\n")
		for i, s := range parts {
			word := s
			if toks := Tokenize(s); len(toks) > 0 {
				word = cleanToken(toks[0])
			}
			fmt.Fprintf(&b, "Activity %d: write down what \"%s\" leads to, then check: %s\n", i+1, word, s)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
