package calc

import (
	"fmt"
	"math"
	"strings"
)

// PCR types select the polymerase buffer conditions for the Tm model.
const (
	PCRTypeOneTaq = "OneTaq"
	PCRTypeQ5     = "Q5"
)

type AnnealingResult struct {
	AnnealingTemp float64 `json:"annealing_temp"`
	Tm1           float64 `json:"tm1"`
	Tm2           float64 `json:"tm2"`
	Warning       string  `json:"warning,omitempty"`
}

// AnnealingTemp computes the recommended annealing temperature for a
// primer pair. OneTaq reactions anneal 3 degrees below the lower primer
// Tm; Q5 reactions anneal 3 degrees above it. Warnings are attached for
// primers outside the optimal length range and for Tms differing by
// more than 5 degrees.
func AnnealingTemp(forward, reverse, pcrType string) (AnnealingResult, error) {
	fwd, err := ValidatePrimer(forward)
	if err != nil {
		return AnnealingResult{}, err
	}
	rev, err := ValidatePrimer(reverse)
	if err != nil {
		return AnnealingResult{}, err
	}

	var cond TmConditions
	var offset float64
	switch pcrType {
	case PCRTypeOneTaq:
		cond = TmConditions{Na: 50, Mg: 1.8, DNTPs: 0.2, Primer: 200, Template: 25}
		offset = -3
	case PCRTypeQ5:
		cond = TmConditions{Na: 70, Mg: 2.0, DNTPs: 0.2, Primer: 500, Template: 25}
		offset = 3
	default:
		return AnnealingResult{}, fmt.Errorf("unknown PCR type %q: use %s or %s", pcrType, PCRTypeOneTaq, PCRTypeQ5)
	}

	tm1, err := MeltingTemp(fwd, cond)
	if err != nil {
		return AnnealingResult{}, fmt.Errorf("forward primer: %w", err)
	}
	tm2, err := MeltingTemp(rev, cond)
	if err != nil {
		return AnnealingResult{}, fmt.Errorf("reverse primer: %w", err)
	}

	result := AnnealingResult{
		AnnealingTemp: round(math.Min(tm1, tm2)+offset, 1),
		Tm1:           round(tm1, 1),
		Tm2:           round(tm2, 1),
	}

	var warnings []string
	if n := len(fwd); n < 15 || n > 40 {
		warnings = append(warnings, fmt.Sprintf("Forward primer length (%d bp) is outside optimal range (15-40 bp).", n))
	}
	if n := len(rev); n < 15 || n > 40 {
		warnings = append(warnings, fmt.Sprintf("Reverse primer length (%d bp) is outside optimal range (15-40 bp).", n))
	}
	if diff := math.Abs(tm1 - tm2); diff > 5 {
		warnings = append(warnings, fmt.Sprintf("Tm difference (%.1f°C) is >5°C. Consider redesigning primers.", diff))
	}
	result.Warning = strings.Join(warnings, " ")

	return result, nil
}
