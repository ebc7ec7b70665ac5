package generate

import "fmt"

// VisualDescription emits the fixed doodle layout for a concept. The
// output is a textual drawing guide, not a raster image.
func VisualDescription(concept string) string {
	return fmt.Sprintf(`Doodle layout for "%s":

Central image: "%s" written large inside a cloud shape.
Branches: four thick arrows radiating out, one per major idea.
Text bubbles: one short phrase per branch, no full sentences.
Highlight boxes: square frames around the two ideas that connect back to each other.
Color legend: blue for definitions, green for examples, orange for anything to memorize.`, concept, concept)
}
