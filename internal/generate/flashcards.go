package generate

import (
	"fmt"
	"strings"
)

// BlankMarker replaces the hidden answer token in fill-in-the-blank
// questions.
const BlankMarker = "_____"

const (
	cardSentenceMinLen = 10
	padTokenWindow     = 20
	padTokenMinLen     = 5
)

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Flashcards builds up to count cards from content. Sentences longer
// than 10 chars become fill-in-the-blank questions with their middle
// token removed; if that yields fewer than count cards, generic
// "What is ..." cards are padded in from the first 20 content tokens
// longer than 5 chars, skipping duplicates. Pool exhaustion returns
// fewer than count cards, which is not an error.
func Flashcards(content string, count int) []Flashcard {
	if count <= 0 {
		return []Flashcard{}
	}

	cards := make([]Flashcard, 0, count)
	seen := map[string]bool{}

	for _, sentence := range SplitSentences(content) {
		if len(cards) == count {
			return cards
		}
		if len(sentence) <= cardSentenceMinLen {
			continue
		}
		toks := Tokenize(sentence)
		if len(toks) == 0 {
			continue
		}
		mid := len(toks) / 2
		answer := cleanToken(toks[mid])
		if answer == "" {
			continue
		}
		blanked := make([]string, len(toks))
		copy(blanked, toks)
		blanked[mid] = BlankMarker
		cards = append(cards, Flashcard{
			Question: strings.Join(blanked, " "),
			Answer:   answer,
		})
		seen[strings.ToLower(answer)] = true
	}

	toks := Tokenize(content)
	if len(toks) > padTokenWindow {
		toks = toks[:padTokenWindow]
	}
	for _, tok := range toks {
		if len(cards) == count {
			break
		}
		word := cleanToken(tok)
		if len(word) <= padTokenMinLen {
			continue
		}
		key := strings.ToLower(word)
		if seen[key] {
			continue
		}
		seen[key] = true
		cards = append(cards, Flashcard{
			Question: fmt.Sprintf("What is \"%s\"?", word),
			Answer:   word,
		})
	}

	return cards
}
