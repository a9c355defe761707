package section

import (
	"regexp"
	"strings"
)

// headingRE matches a numbered heading at the start of a line: an
// optional "Section" literal, a dotted sequence of integers, a
// separator, and the rest of the line as the raw title.
// Matches "1. PURPOSE", "2.1 Reagents", and "Section 3: Safety".
var headingRE = regexp.MustCompile(`^(?i:section\s+)?(\d+(?:\.\d+)*)[.:\s]\s*(.+)$`)

// Detect scans text line by line and returns heading candidates in text
// order. It does not deduplicate or judge whether a candidate is a real
// heading; that is Classify's job.
func Detect(text string) []Candidate {
	var candidates []Candidate
	for start := 0; start < len(text); {
		line := text[start:]
		next := len(text)
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = start + i + 1
		}

		if m := headingRE.FindStringSubmatchIndex(line); m != nil {
			title := strings.TrimSpace(line[m[4]:m[5]])
			if title != "" {
				candidates = append(candidates, Candidate{
					Number: line[m[2]:m[3]],
					Title:  title,
					Start:  start,
					End:    start + m[1],
				})
			}
		}
		start = next
	}
	return candidates
}
