package generate

import (
	"fmt"

	"github.com/educrate/educrate-backend/internal/types"
)

const audioExcerptLen = 200

// AudioScript wraps the opening of content into the fixed five-section
// lesson template. The style parameter only labels the framing.
func AudioScript(content string, style types.LearningStyle) string {
	main := excerpt(content, audioExcerptLen)
	return fmt.Sprintf(`[Intro]
Welcome to this %s audio lesson. Find a comfortable spot and press play.

[Main Content]
%s

[Interactive]
Pause here. Say the main idea out loud in your own words, then continue.

[Summary]
You just heard the core of the material. One more listen locks it in.

[Outro]
Great session. Come back for a review pass tomorrow.

Estimated duration: 10-15 minutes`, string(style), main)
}
