package calc

import (
	"math"
	"strings"
	"testing"
)

// M13 reverse sequencing primer, paired with m13Forward.
const m13Reverse = "CAGGAAACAGCTATGAC"

func TestAnnealingTemp_OneTaq(t *testing.T) {
	result, err := AnnealingTemp(m13Forward, m13Reverse, PCRTypeOneTaq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lower := math.Min(result.Tm1, result.Tm2)
	if diff := math.Abs(result.AnnealingTemp - (lower - 3)); diff > 0.06 {
		t.Errorf("annealing temp %.1f is not 3 below lower Tm %.1f", result.AnnealingTemp, lower)
	}
	if result.AnnealingTemp < 35 || result.AnnealingTemp > 80 {
		t.Errorf("annealing temp %.1f outside plausible range", result.AnnealingTemp)
	}
}

func TestAnnealingTemp_Q5AboveOneTaq(t *testing.T) {
	oneTaq, err := AnnealingTemp(m13Forward, m13Reverse, PCRTypeOneTaq)
	if err != nil {
		t.Fatalf("OneTaq: %v", err)
	}
	q5, err := AnnealingTemp(m13Forward, m13Reverse, PCRTypeQ5)
	if err != nil {
		t.Fatalf("Q5: %v", err)
	}
	// Q5 anneals above the lower Tm, OneTaq below it, and the Q5 buffer
	// holds more salt; the recommendation must come out higher.
	if q5.AnnealingTemp <= oneTaq.AnnealingTemp {
		t.Errorf("Q5 temp %.1f not above OneTaq temp %.1f", q5.AnnealingTemp, oneTaq.AnnealingTemp)
	}
}

func TestAnnealingTemp_IdenticalPrimers(t *testing.T) {
	result, err := AnnealingTemp(m13Forward, m13Forward, PCRTypeOneTaq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tm1 != result.Tm2 {
		t.Errorf("identical primers gave different Tms: %.1f vs %.1f", result.Tm1, result.Tm2)
	}
	if result.Warning != "" {
		t.Errorf("unexpected warning: %q", result.Warning)
	}
}

func TestAnnealingTemp_LengthWarning(t *testing.T) {
	result, err := AnnealingTemp("ATGCATGCATGC", m13Reverse, PCRTypeOneTaq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Warning, "outside optimal range") {
		t.Errorf("expected length warning, got %q", result.Warning)
	}
}

func TestAnnealingTemp_MismatchWarning(t *testing.T) {
	result, err := AnnealingTemp("ATATATATATAT", "GCGCGCGCGCGCGCGCGCGC", PCRTypeOneTaq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Warning == "" {
		t.Error("expected a Tm mismatch warning")
	}
}

func TestAnnealingTemp_Errors(t *testing.T) {
	if _, err := AnnealingTemp("ATXG", m13Reverse, PCRTypeOneTaq); err == nil {
		t.Error("expected error for invalid forward primer")
	}
	if _, err := AnnealingTemp(m13Forward, "", PCRTypeOneTaq); err == nil {
		t.Error("expected error for empty reverse primer")
	}
	if _, err := AnnealingTemp(m13Forward, m13Reverse, "Phusion"); err == nil {
		t.Error("expected error for unknown PCR type")
	}
	// Degenerate bases pass primer validation but have no defined duplex
	// thermodynamics.
	if _, err := AnnealingTemp("ATGCATGCNATGC", m13Reverse, PCRTypeOneTaq); err == nil {
		t.Error("expected error for degenerate base in Tm calculation")
	}
}
