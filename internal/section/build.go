package section

import (
	"regexp"
	"strings"
)

// blankRunRE matches runs of three or more blank-ish lines.
var blankRunRE = regexp.MustCompile(`\n\s*\n\s*\n+`)

// Build slices text into sections delimited by the classified
// boundaries. Each section's content runs from the end of its heading to
// the start of the next boundary, or end of text for the last one. Runs
// of three or more blank lines collapse to a single blank line; nothing
// else is normalized.
func Build(text string, boundaries []Candidate) []Section {
	var sections []Section
	for i, b := range boundaries {
		end := len(text)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].Start
		}

		content := strings.TrimSpace(text[b.End:end])
		content = blankRunRE.ReplaceAllString(content, "\n\n")

		sections = append(sections, Section{
			Number:      b.Number,
			Title:       b.Title,
			Content:     content,
			FullHeading: b.Number + ". " + b.Title,
		})
	}
	return sections
}
