package generate

import (
	"strings"
	"testing"
)

func TestFlashcards_BlanksMiddleToken(t *testing.T) {
	cards := Flashcards("Machine learning is a method of data analysis.", 1)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].Question != "Machine learning is a "+BlankMarker+" of data analysis" {
		t.Fatalf("unexpected question: %q", cards[0].Question)
	}
	if cards[0].Answer != "method" {
		t.Fatalf("unexpected answer: %q", cards[0].Answer)
	}
}

func TestFlashcards_PadsFromTokensWhenSentencesRunOut(t *testing.T) {
	cards := Flashcards("Neural networks process signals. Gradient descent optimizes weights.", 5)
	if len(cards) < 3 {
		t.Fatalf("expected padded cards, got %d", len(cards))
	}
	blanked := 0
	for _, card := range cards {
		if strings.Contains(card.Question, BlankMarker) {
			blanked++
		} else if !strings.HasPrefix(card.Question, "What is \"") {
			t.Errorf("unexpected padded question form: %q", card.Question)
		}
	}
	if blanked != 2 {
		t.Fatalf("expected 2 sentence cards, got %d", blanked)
	}
}

func TestFlashcards_DedupesAnswers(t *testing.T) {
	cards := Flashcards("Entropy measures disorder. Entropy never decreases here.", 10)
	seen := map[string]bool{}
	for _, card := range cards {
		key := strings.ToLower(card.Answer)
		if seen[key] {
			t.Fatalf("duplicate answer %q", card.Answer)
		}
		seen[key] = true
	}
}

func TestFlashcards_NeverExceedsCount(t *testing.T) {
	content := strings.Repeat("This sentence definitely has enough tokens inside. ", 30)
	cards := Flashcards(content, 10)
	if len(cards) > 10 {
		t.Fatalf("expected at most 10 cards, got %d", len(cards))
	}
}

func TestFlashcards_EmptyContent(t *testing.T) {
	if cards := Flashcards("", 10); len(cards) != 0 {
		t.Fatalf("expected no cards, got %d", len(cards))
	}
	if cards := Flashcards("some content here", 0); len(cards) != 0 {
		t.Fatalf("expected no cards for zero count, got %d", len(cards))
	}
}
