package generate

import "github.com/educrate/educrate-backend/internal/types"

// dominantThreshold is the minimum score that marks a style dominant.
const dominantThreshold = 7

// DominantStyles derives a user's dominant learning styles from the four
// assessment scores. Every style scoring at least 7 is included; when
// none qualify, the single highest-scoring style wins, ties resolved by
// the fixed enumeration order visual, auditory, textual, kinesthetic.
// The result is never empty.
func DominantStyles(visual, auditory, textual, kinesthetic int) []types.LearningStyle {
	scores := []int{visual, auditory, textual, kinesthetic}

	out := make([]types.LearningStyle, 0, len(scores))
	for i, style := range types.AllLearningStyles {
		if scores[i] >= dominantThreshold {
			out = append(out, style)
		}
	}
	if len(out) > 0 {
		return out
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return []types.LearningStyle{types.AllLearningStyles[best]}
}
