package generate

import (
	"strings"
	"unicode/utf8"
)

// minSentenceLen drops trivial fragments left over from splitting, such
// as stray abbreviation dots.
const minSentenceLen = 3

// SplitSentences splits content on sentence-terminal punctuation and
// returns the trimmed sentence-like substrings in order. Total on any
// input; empty input yields an empty slice.
func SplitSentences(content string) []string {
	out := []string{}
	var b strings.Builder
	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if len(s) >= minSentenceLen {
			out = append(out, s)
		}
	}
	for _, r := range content {
		switch r {
		case '.', '!', '?':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return out
}

// Tokenize returns the whitespace-delimited tokens of content in order.
func Tokenize(content string) []string {
	return strings.Fields(content)
}

// cleanToken strips leading/trailing punctuation so "data." and "data"
// count as the same term.
func cleanToken(tok string) string {
	return strings.Trim(tok, ".,;:!?()[]{}\"'")
}

// firstClause returns the text up to the first clause boundary, or the
// whole string when none exists.
func firstClause(content string) string {
	content = strings.TrimSpace(content)
	if i := strings.IndexAny(content, ",.;!?"); i > 0 {
		return strings.TrimSpace(content[:i])
	}
	return content
}

// excerpt returns at most n bytes of content, whole content when it is
// already short enough. The cut backs up to a rune boundary so the
// result is always valid UTF-8.
func excerpt(content string, n int) string {
	if len(content) <= n {
		return content
	}
	for n > 0 && !utf8.RuneStart(content[n]) {
		n--
	}
	return content[:n]
}
