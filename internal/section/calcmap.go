package section

import "strings"

// Calculator tags associating a section with a downstream bench
// calculator.
const (
	CalcPCR         = "pcr"
	CalcGibson      = "gibson"
	CalcRestriction = "restriction"
	CalcLigation    = "ligation"
	CalcOligo       = "oligo"
)

// calculatorKeywords maps each tag to the keywords that trigger it.
// "annealing" is listed under both pcr and oligo: a section mentioning
// annealing with no other cues is relevant to both.
var calculatorKeywords = []struct {
	tag      string
	keywords []string
}{
	{CalcPCR, []string{"pcr", "primer", "annealing", "thermocycler", "amplification"}},
	{CalcGibson, []string{"gibson", "assembly", "fragment"}},
	{CalcRestriction, []string{"restriction", "digest", "cut"}},
	{CalcLigation, []string{"ligation", "ligate", "insert", "vector", "clone"}},
	{CalcOligo, []string{"oligo", "annealing", "oligonucleotide"}},
}

// Calculators returns the tags of every calculator whose keywords appear
// in the section title or content, without duplicates, in table order.
func Calculators(title, content string) []string {
	text := strings.ToLower(title + " " + content)

	var tags []string
	for _, entry := range calculatorKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	return tags
}
