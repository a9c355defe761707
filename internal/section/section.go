// Package section extracts numbered sections from decoded SOP text.
//
// Extraction is a three-stage pure pipeline: Detect finds candidate
// numbered headings line by line, Classify filters out incidental numeric
// text such as reagent volumes, and Build slices the document into
// per-section content spans. For a fixed input the output is
// byte-for-byte deterministic.
package section

// Candidate is a possible section heading found by Detect.
// Offsets are byte positions into the scanned text.
type Candidate struct {
	Number string // dotted integer sequence, e.g. "2" or "3.2.1"
	Title  string
	Start  int // offset of the heading line start
	End    int // offset just past the heading match
}

// Section is one delimited span of a document. Numbers are not
// guaranteed unique; duplicate or out-of-order numbering in the source
// document is preserved as-is.
type Section struct {
	Number      string `json:"section_number"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	FullHeading string `json:"full_heading"`
}

// Parse runs the full detection, classification, and building pipeline
// over decoded document text.
func Parse(text string) []Section {
	return Build(text, Classify(Detect(text)))
}
