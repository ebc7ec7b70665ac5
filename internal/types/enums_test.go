package types

import (
	"reflect"
	"testing"
)

func TestParseMood_RejectsUnknown(t *testing.T) {
	for _, valid := range []string{"focused", "relaxed", "energetic", "stressed", "curious"} {
		if _, err := ParseMood(valid); err != nil {
			t.Errorf("ParseMood(%q): %v", valid, err)
		}
	}
	if _, err := ParseMood("ecstatic"); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
	if _, err := ParseMood(""); err == nil {
		t.Fatalf("expected error for empty mood")
	}
}

func TestParseLearningStyle_RejectsUnknown(t *testing.T) {
	if _, err := ParseLearningStyle("telepathic"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
	for _, style := range AllLearningStyles {
		if _, err := ParseLearningStyle(string(style)); err != nil {
			t.Errorf("ParseLearningStyle(%q): %v", style, err)
		}
	}
}

func TestUserStyles_SkipsUnknownStoredValues(t *testing.T) {
	u := &User{LearningStyles: []byte(`["visual","bogus","textual"]`)}
	got := u.Styles()
	want := []LearningStyle{StyleVisual, StyleTextual}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUserStyles_NilAndMalformed(t *testing.T) {
	var u *User
	if got := u.Styles(); got != nil {
		t.Fatalf("nil user should yield nil styles")
	}
	u = &User{LearningStyles: []byte(`not json`)}
	if got := u.Styles(); got != nil {
		t.Fatalf("malformed column should yield nil styles, got %v", got)
	}
}

func TestKitLogRoundTrip(t *testing.T) {
	entries := []ProcessingLogEntry{
		{Step: "generate_textual", Status: LogStarted, Message: "Generating textual content"},
		{Step: "generate_textual", Status: LogCompleted, Message: "Generated 2 item(s)"},
	}
	kit := &LearningKit{ProcessingLog: ProcessingLogJSON(entries)}
	got := kit.Log()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Step != "generate_textual" || got[1].Status != LogCompleted {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}
