package types

import "fmt"

// LearningStyle tags every generated artifact and drives its formatting.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleTextual     LearningStyle = "textual"
	StyleKinesthetic LearningStyle = "kinesthetic"
)

// AllLearningStyles is the closed set, in tie-breaking order for
// assessment scoring.
var AllLearningStyles = []LearningStyle{StyleVisual, StyleAuditory, StyleTextual, StyleKinesthetic}

func ParseLearningStyle(s string) (LearningStyle, error) {
	switch LearningStyle(s) {
	case StyleVisual, StyleAuditory, StyleTextual, StyleKinesthetic:
		return LearningStyle(s), nil
	default:
		return "", fmt.Errorf("unknown learning style %q", s)
	}
}

// Mood describes the learner's current state for the study advisor.
type Mood string

const (
	MoodFocused   Mood = "focused"
	MoodRelaxed   Mood = "relaxed"
	MoodEnergetic Mood = "energetic"
	MoodStressed  Mood = "stressed"
	MoodCurious   Mood = "curious"
)

// ParseMood rejects unknown moods instead of defaulting. The upstream
// behavior of silently treating anything unrecognized as "focused" hid
// client bugs.
func ParseMood(s string) (Mood, error) {
	switch Mood(s) {
	case MoodFocused, MoodRelaxed, MoodEnergetic, MoodStressed, MoodCurious:
		return Mood(s), nil
	default:
		return "", fmt.Errorf("unknown mood %q", s)
	}
}

type ContentType string

const (
	ContentSummary      ContentType = "summary"
	ContentFlashcards   ContentType = "flashcards"
	ContentAudioLesson  ContentType = "audio_lesson"
	ContentVisualDoodle ContentType = "visual_doodle"
	ContentQuiz         ContentType = "quiz"
)

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentSummary, ContentFlashcards, ContentAudioLesson, ContentVisualDoodle, ContentQuiz:
		return ContentType(s), nil
	default:
		return "", fmt.Errorf("unknown content type %q", s)
	}
}

// KitStatus is terminal-only: every stored kit is either completed or
// failed, never in between.
type KitStatus string

const (
	KitCompleted KitStatus = "completed"
	KitFailed    KitStatus = "failed"
)

type LogStatus string

const (
	LogStarted    LogStatus = "started"
	LogInProgress LogStatus = "in_progress"
	LogCompleted  LogStatus = "completed"
	LogFailed     LogStatus = "failed"
)
