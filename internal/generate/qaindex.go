package generate

import (
	"strings"
)

const (
	keyTermMinLen       = 5
	keyTermsPerSentence = 2
	maxKeyTerms         = 10
	maxConcepts         = 5
)

// conceptMarkers flag sentences likely to define or explain something.
var conceptMarkers = []string{"is", "are", "means", "refers to"}

// QAIndex is the derived term/concept view of one kit's source content,
// recomputed on every kit creation.
type QAIndex struct {
	Topic         string   `json:"topic"`
	KeyTerms      []string `json:"key_terms"`
	Concepts      []string `json:"concepts"`
	ContentLength int      `json:"content_length"`
	SectionCount  int      `json:"section_count"`
}

// BuildQAIndex extracts deduplicated key terms (two per sentence, longer
// than 5 chars, capped at 10) and candidate concept sentences (capped at
// 5) from content.
func BuildQAIndex(content, topic string) QAIndex {
	idx := QAIndex{
		Topic:         topic,
		KeyTerms:      []string{},
		Concepts:      []string{},
		ContentLength: len(content),
		SectionCount:  countSections(content),
	}

	seen := map[string]bool{}
	sentences := SplitSentences(content)
	for _, sentence := range sentences {
		taken := 0
		for _, tok := range Tokenize(sentence) {
			if taken == keyTermsPerSentence || len(idx.KeyTerms) == maxKeyTerms {
				break
			}
			term := cleanToken(tok)
			if len(term) <= keyTermMinLen {
				continue
			}
			key := strings.ToLower(term)
			if seen[key] {
				continue
			}
			seen[key] = true
			idx.KeyTerms = append(idx.KeyTerms, term)
			taken++
		}
	}

	for _, sentence := range sentences {
		if len(idx.Concepts) == maxConcepts {
			break
		}
		if hasConceptMarker(sentence) {
			idx.Concepts = append(idx.Concepts, sentence)
		}
	}

	return idx
}

func hasConceptMarker(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, marker := range conceptMarkers {
		if strings.Contains(" "+lower+" ", " "+marker+" ") {
			return true
		}
	}
	return false
}

// countSections counts blank-line separated blocks; non-empty content
// has at least one section.
func countSections(content string) int {
	n := 0
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	return n
}
