package generate

import (
	"fmt"

	"github.com/educrate/educrate-backend/internal/types"
)

// maxStudyDuration caps a single sitting regardless of available time.
const maxStudyDuration = 45

// StudyPlan is the advisor's recommendation for one study session.
type StudyPlan struct {
	ContentTypes  []types.ContentType `json:"recommended_content_types"`
	StudyDuration int                 `json:"study_duration"`
	Difficulty    string              `json:"difficulty"`
	BreakInterval int                 `json:"break_intervals"`
	Message       string              `json:"motivation_message"`
}

type moodProfile struct {
	contentTypes  []types.ContentType
	difficulty    string
	breakInterval int
	message       string
}

var moodProfiles = map[types.Mood]moodProfile{
	types.MoodFocused: {
		contentTypes:  []types.ContentType{types.ContentSummary, types.ContentFlashcards, types.ContentQuiz},
		difficulty:    "high",
		breakInterval: 25,
		message:       "You're dialed in. Push through the hard parts of %s now.",
	},
	types.MoodRelaxed: {
		contentTypes:  []types.ContentType{types.ContentSummary, types.ContentAudioLesson},
		difficulty:    "medium",
		breakInterval: 20,
		message:       "No rush. Let %s sink in at your own pace.",
	},
	types.MoodEnergetic: {
		contentTypes:  []types.ContentType{types.ContentFlashcards, types.ContentQuiz, types.ContentVisualDoodle},
		difficulty:    "high",
		breakInterval: 15,
		message:       "Channel that energy: rapid-fire practice on %s.",
	},
	types.MoodStressed: {
		contentTypes:  []types.ContentType{types.ContentAudioLesson, types.ContentSummary},
		difficulty:    "low",
		breakInterval: 10,
		message:       "Keep it gentle. A light pass over %s still counts.",
	},
	types.MoodCurious: {
		contentTypes:  []types.ContentType{types.ContentVisualDoodle, types.ContentSummary, types.ContentFlashcards},
		difficulty:    "medium",
		breakInterval: 20,
		message:       "Perfect time to explore %s!",
	},
}

// SuggestStudyPlan maps a mood and available time to a fixed study plan.
// Unknown moods are a configuration error, not a silent default.
func SuggestStudyPlan(mood types.Mood, availableTime int, topic string) (StudyPlan, error) {
	if availableTime <= 0 {
		return StudyPlan{}, fmt.Errorf("available time must be positive, got %d", availableTime)
	}
	profile, ok := moodProfiles[mood]
	if !ok {
		return StudyPlan{}, fmt.Errorf("unknown mood %q", mood)
	}

	duration := availableTime
	if duration > maxStudyDuration {
		duration = maxStudyDuration
	}

	return StudyPlan{
		ContentTypes:  profile.contentTypes,
		StudyDuration: duration,
		Difficulty:    profile.difficulty,
		BreakInterval: profile.breakInterval,
		Message:       fmt.Sprintf(profile.message, topic),
	}, nil
}
