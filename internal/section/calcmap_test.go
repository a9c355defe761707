package section

import (
	"reflect"
	"testing"
)

func TestCalculators(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    []string
	}{
		{"pcr from title", "PCR Amplification Protocol", "...", []string{CalcPCR}},
		{"gibson from title", "Gibson Assembly of Fragments", "...", []string{CalcGibson}},
		{"annealing maps to both", "annealing", "", []string{CalcPCR, CalcOligo}},
		{"pcr and ligation", "MATERIALS AND METHODS", "Use PCR and a vector.", []string{CalcPCR, CalcLigation}},
		{"restriction", "Digestion", "Cut with EcoRI in a restriction digest.", []string{CalcRestriction}},
		{"case insensitive", "LIGATION SETUP", "", []string{CalcLigation}},
		{"no keywords", "SAFETY", "Wear gloves.", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculators(tt.title, tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Calculators(%q, %q) = %v, want %v", tt.title, tt.content, got, tt.want)
			}
		})
	}
}

func TestCalculators_NoDuplicates(t *testing.T) {
	// Multiple keywords for the same tag still yield it once.
	got := Calculators("PCR primer annealing", "thermocycler amplification")
	count := 0
	for _, tag := range got {
		if tag == CalcPCR {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected pcr exactly once, got %v", got)
	}
}
