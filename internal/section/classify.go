package section

import (
	"strings"
	"unicode"
)

// Classify filters candidates down to true section boundaries,
// preserving order. A candidate survives when its title is mostly
// uppercase, or when its number is top-level (no dot) and the title is
// long enough to be a real heading. Inline numeric mentions like
// "2.5 mL of buffer" fail both tests.
func Classify(candidates []Candidate) []Candidate {
	var kept []Candidate
	for _, c := range candidates {
		if isMajorHeading(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func isMajorHeading(c Candidate) bool {
	title := []rune(c.Title)

	upper, nonSpace := 0, 0
	for _, r := range title {
		if r != ' ' {
			nonSpace++
		}
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if nonSpace == 0 {
		nonSpace = 1
	}

	allCaps := float64(upper)/float64(nonSpace) > 0.7 && len(title) > 5
	topLevel := !strings.Contains(c.Number, ".")

	return allCaps || (topLevel && len(title) > 10)
}
