package calc

import (
	"math"
	"testing"
)

func TestGibsonAssembly_EqualRatios(t *testing.T) {
	result, err := GibsonAssembly([]GibsonFragment{
		{SizeBP: 1000, ConcNgUl: 50, MolarRatio: 1},
		{SizeBP: 2000, ConcNgUl: 50, MolarRatio: 1},
	}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalSizeBP != 3000 {
		t.Errorf("total size: got %d", result.TotalSizeBP)
	}
	if result.MolarRatios != "1.0:1.0" {
		t.Errorf("molar ratios: got %q", result.MolarRatios)
	}
	// Unscaled volumes are 1.3 and 2.6 uL, so the scale factor is 10/3.9.
	if result.ScaleFactor != 2.56 {
		t.Errorf("scale factor: got %g", result.ScaleFactor)
	}
	if len(result.Fragments) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(result.Fragments))
	}
	if result.Fragments[0].VolumeUl != 3.33 || result.Fragments[1].VolumeUl != 6.67 {
		t.Errorf("volumes: got %g and %g", result.Fragments[0].VolumeUl, result.Fragments[1].VolumeUl)
	}
	if result.Fragments[0].Pmol != result.Fragments[1].Pmol {
		t.Errorf("equal ratios should give equal pmol: %g vs %g",
			result.Fragments[0].Pmol, result.Fragments[1].Pmol)
	}
	if result.TotalPmol != 0.513 {
		t.Errorf("total pmol: got %g", result.TotalPmol)
	}
}

func TestGibsonAssembly_VolumesSumToTotal(t *testing.T) {
	result, err := GibsonAssembly([]GibsonFragment{
		{SizeBP: 5000, ConcNgUl: 80, MolarRatio: 1},
		{SizeBP: 1200, ConcNgUl: 35, MolarRatio: 2},
		{SizeBP: 800, ConcNgUl: 20, MolarRatio: 2},
	}, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0.0
	for _, f := range result.Fragments {
		sum += f.VolumeUl
	}
	if math.Abs(sum-result.TotalVolumeUl) > 0.05 {
		t.Errorf("fragment volumes sum to %.2f, want %.2f", sum, result.TotalVolumeUl)
	}
}

func TestGibsonAssembly_RatioScaling(t *testing.T) {
	result, err := GibsonAssembly([]GibsonFragment{
		{SizeBP: 4000, ConcNgUl: 50, MolarRatio: 1},
		{SizeBP: 500, ConcNgUl: 50, MolarRatio: 3},
	}, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ratio := result.Fragments[1].Pmol / result.Fragments[0].Pmol
	if math.Abs(ratio-3) > 0.05 {
		t.Errorf("pmol ratio %.2f, want 3", ratio)
	}
	if result.MolarRatios != "1.0:3.0" {
		t.Errorf("molar ratios: got %q", result.MolarRatios)
	}
}

func TestGibsonAssembly_Errors(t *testing.T) {
	one := []GibsonFragment{{SizeBP: 1000, ConcNgUl: 50, MolarRatio: 1}}
	if _, err := GibsonAssembly(one, 10); err == nil {
		t.Error("expected error for a single fragment")
	}

	two := []GibsonFragment{
		{SizeBP: 1000, ConcNgUl: 50, MolarRatio: 1},
		{SizeBP: 2000, ConcNgUl: 50, MolarRatio: 1},
	}
	if _, err := GibsonAssembly(two, 0); err == nil {
		t.Error("expected error for zero total volume")
	}

	bad := []GibsonFragment{
		{SizeBP: 1000, ConcNgUl: 50, MolarRatio: 1},
		{SizeBP: 0, ConcNgUl: 50, MolarRatio: 1},
	}
	if _, err := GibsonAssembly(bad, 10); err == nil {
		t.Error("expected error for zero fragment size")
	}

	bad[1] = GibsonFragment{SizeBP: 2000, ConcNgUl: 0, MolarRatio: 1}
	if _, err := GibsonAssembly(bad, 10); err == nil {
		t.Error("expected error for zero concentration")
	}

	bad[1] = GibsonFragment{SizeBP: 2000, ConcNgUl: 50, MolarRatio: -1}
	if _, err := GibsonAssembly(bad, 10); err == nil {
		t.Error("expected error for negative molar ratio")
	}
}
